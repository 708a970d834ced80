package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jorguzz-fer/agente-conteudo/internal/common"
	"github.com/jorguzz-fer/agente-conteudo/internal/delivery"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// AgentGenerator gọi agent LLM bên ngoài qua webhook để sinh nội dung.
// Request được forward nguyên văn, không thêm bớt field.
type AgentGenerator struct {
	sender *delivery.Sender
}

// NewAgentGenerator tạo AgentGenerator trỏ tới webhook URL của agent
func NewAgentGenerator(webhookURL string) *AgentGenerator {
	return &AgentGenerator{sender: delivery.NewSender(webhookURL)}
}

// Generate forward request tới agent và parse response. Response thiếu
// full_text bị coi là malformed, trả lỗi cứng chứ không tự vá.
func (g *AgentGenerator) Generate(ctx context.Context, req Request) (*Content, error) {
	log := logger.GetAppLogger()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	respBody, err := g.sender.SendRaw(ctx, body)
	if err != nil {
		log.Errorf("❌ Agent trả lỗi: %v", err)
		return nil, common.NewError(
			common.ErrCodeUpstreamAgent,
			"Falha na comunicação com o agente.",
			http.StatusBadGateway,
			err,
		)
	}

	var content Content
	if err := json.Unmarshal(respBody, &content); err != nil {
		return nil, common.NewError(
			common.ErrCodeUpstreamAgent,
			"Resposta do agente não é JSON válido.",
			http.StatusBadGateway,
			err,
		)
	}

	if content.FullText == "" {
		return nil, common.NewError(
			common.ErrCodeUpstreamAgent,
			"Resposta do agente está malformada.",
			http.StatusBadGateway,
			fmt.Errorf("response missing full_text"),
		)
	}

	return &content, nil
}
