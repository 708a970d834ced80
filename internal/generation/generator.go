// Package generation sinh nội dung từ một chủ đề: qua agent LLM bên ngoài
// khi webhook được cấu hình, ngược lại dùng mock generator có cấu trúc
// giống hệt để front end vẫn chạy được offline.
package generation

import (
	"context"

	"github.com/jorguzz-fer/agente-conteudo/config"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// Request là input cho một lượt sinh nội dung đơn lẻ
type Request struct {
	Theme    string `json:"theme" validate:"required,no_xss"`
	Context  string `json:"context,omitempty"`
	Audience string `json:"audience,omitempty"`
	Tone     string `json:"tone,omitempty"`
	CTAText  string `json:"cta_text,omitempty"`
	CTALink  string `json:"cta_link,omitempty"`
}

// CTA là lời kêu gọi hành động ở cuối nội dung
type CTA struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// Content là một gói nội dung hoàn chỉnh trả về cho người duyệt
type Content struct {
	Theme      string   `json:"theme"`
	Audience   string   `json:"audience"`
	Tone       string   `json:"tone"`
	CTA        CTA      `json:"cta"`
	Titles     []string `json:"titles"`
	ImageIdeas []string `json:"image_ideas"`
	Lede       string   `json:"lede"`
	Bullets    []string `json:"bullets"`
	Highlights []string `json:"highlights"`
	Tags       []string `json:"tags"`
	FullText   string   `json:"full_text"`
}

// Generator sinh một gói nội dung từ request
type Generator interface {
	Generate(ctx context.Context, req Request) (*Content, error)
}

// New chọn implementation theo config: có webhook URL thì dùng agent,
// không có thì dùng mock để chạy offline
func New(cfg *config.Configuration) Generator {
	log := logger.GetAppLogger()
	if cfg != nil && cfg.N8NWebhookURL != "" {
		log.Info("✅ Generator: dùng agent qua webhook")
		return NewAgentGenerator(cfg.N8NWebhookURL)
	}
	log.Warn("⚠️ Generator: webhook chưa cấu hình, dùng mock generator")
	return NewMockGenerator()
}
