// Package delivery gửi nội dung đã duyệt tới webhook automation downstream:
// sender HTTP cho từng payload và dispatcher tuần tự cho bulk import.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// webhookTimeout là timeout cho một lần gửi webhook
const webhookTimeout = 10 * time.Second

// UpstreamError là lỗi khi webhook trả về status ngoài 2xx.
// Message có dạng "<status>: <body>" để per-item error trong bulk result
// giữ nguyên status và body từ downstream.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Body)
}

// Sender gửi payload JSON tới webhook n8n đã cấu hình
type Sender struct {
	webhookURL string
	client     *http.Client
}

// NewSender tạo Sender với webhook URL từ config. URL rỗng là hợp lệ:
// Configured() trả false và caller tự degrade, Sender không bao giờ panic.
func NewSender(webhookURL string) *Sender {
	return &Sender{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: webhookTimeout},
	}
}

// Configured cho biết webhook URL đã được cấu hình chưa
func (s *Sender) Configured() bool {
	return strings.TrimSpace(s.webhookURL) != ""
}

// Send gửi một payload tới webhook. Trả về *UpstreamError khi downstream
// trả status ngoài 2xx (kèm body), hoặc lỗi transport khi không có response.
// Không retry: mỗi payload gửi đúng một lần.
func (s *Sender) Send(ctx context.Context, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}

// SendRaw gửi một body JSON đã marshal sẵn (forward nguyên văn) và trả về
// body của response. Dùng cho luồng generate pass-through.
func (s *Sender) SendRaw(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}
