package delivery

import (
	"context"
	"time"
)

// defaultSendDelay là khoảng nghỉ giữa hai lần gửi liên tiếp trong bulk
const defaultSendDelay = 500 * time.Millisecond

// Pacer quyết định khoảng nghỉ giữa hai lần gửi webhook liên tiếp.
// Inject vào Dispatcher để test không phải chờ delay thật.
type Pacer interface {
	Wait(ctx context.Context)
}

// FixedDelayPacer nghỉ một khoảng cố định, hủy sớm khi context bị cancel
type FixedDelayPacer struct {
	Delay time.Duration
}

func (p FixedDelayPacer) Wait(ctx context.Context) {
	if p.Delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(p.Delay):
	}
}

// DefaultPacer trả về pacer với delay mặc định giữa các lần gửi
func DefaultPacer() Pacer {
	return FixedDelayPacer{Delay: defaultSendDelay}
}
