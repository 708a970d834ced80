package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
	"github.com/jorguzz-fer/agente-conteudo/internal/spreadsheet"
)

// SourceSpreadsheetImport đánh dấu payload xuất phát từ luồng bulk import
const SourceSpreadsheetImport = "spreadsheet_import"

// Payload là body JSON gửi tới webhook cho mỗi dòng nội dung.
// image_url, cta_text, cta_link luôn có mặt trong JSON (null khi thiếu)
// để workflow downstream không phải phân biệt absent và null.
type Payload struct {
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle"`
	Text      string  `json:"text"`
	ImageURL  *string `json:"image_url"`
	Target    string  `json:"target"`
	CTAText   *string `json:"cta_text"`
	CTALink   *string `json:"cta_link"`
	Source    string  `json:"source"`
	Timestamp string  `json:"timestamp"`
}

// ItemResult là kết quả gửi của một dòng trong bulk
type ItemResult struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Target  string `json:"target"`
}

// Result là tổng kết của một lượt bulk dispatch
type Result struct {
	Message  string       `json:"message"`
	Total    int          `json:"total"`
	Success  int          `json:"success"`
	Failures int          `json:"failures"`
	Results  []ItemResult `json:"results"`
}

// Dispatcher gửi tuần tự từng dòng nội dung tới webhook, có nghỉ giữa
// hai lần gửi để không dồn tải workflow downstream
type Dispatcher struct {
	sender *Sender
	pacer  Pacer
}

// NewDispatcher tạo Dispatcher. pacer nil sẽ dùng DefaultPacer.
func NewDispatcher(sender *Sender, pacer Pacer) *Dispatcher {
	if pacer == nil {
		pacer = DefaultPacer()
	}
	return &Dispatcher{sender: sender, pacer: pacer}
}

// buildPayload chuyển một ContentRow thành payload webhook tại thời điểm gửi
func buildPayload(row spreadsheet.ContentRow, now time.Time) Payload {
	p := Payload{
		Title:     row.Title,
		Subtitle:  row.Subtitle,
		Text:      row.Text,
		Target:    row.Target,
		Source:    SourceSpreadsheetImport,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	if row.ImageURL != "" {
		url := row.ImageURL
		p.ImageURL = &url
	}
	return p
}

// Dispatch gửi tuần tự các dòng theo đúng thứ tự input. Lỗi của một dòng
// không dừng các dòng sau; mỗi dòng gửi đúng một lần, không retry.
// Khi webhook chưa cấu hình, trả kết quả toàn thất bại mà không gọi mạng.
func (d *Dispatcher) Dispatch(ctx context.Context, rows []spreadsheet.ContentRow) Result {
	log := logger.GetAppLogger()

	result := Result{
		Total:   len(rows),
		Results: make([]ItemResult, 0, len(rows)),
	}

	if !d.sender.Configured() {
		log.Warn("⚠️ Webhook chưa được cấu hình, bulk dispatch degrade toàn thất bại")
		for i, row := range rows {
			result.Results = append(result.Results, ItemResult{
				Index:   i,
				Success: false,
				Error:   "webhook not configured",
				Target:  row.Target,
			})
		}
		result.Failures = len(rows)
		result.Message = fmt.Sprintf("Enviados: %d sucesso, %d falhas", 0, len(rows))
		return result
	}

	for i, row := range rows {
		payload := buildPayload(row, time.Now())

		item := ItemResult{Index: i, Target: row.Target}
		if err := d.sender.Send(ctx, payload); err != nil {
			item.Success = false
			item.Error = err.Error()
			result.Failures++
			log.WithField("index", i).Warnf("❌ Gửi dòng %d thất bại: %v", i, err)
		} else {
			item.Success = true
			result.Success++
		}
		result.Results = append(result.Results, item)

		// không nghỉ sau dòng cuối
		if i < len(rows)-1 {
			d.pacer.Wait(ctx)
		}
	}

	result.Message = fmt.Sprintf("Enviados: %d sucesso, %d falhas", result.Success, result.Failures)
	log.Infof("📦 Bulk dispatch hoàn tất: %s", result.Message)
	return result
}
