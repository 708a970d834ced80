// Package historyhdl xử lý HTTP request cho màn hình lịch sử sinh nội dung.
package historyhdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/jorguzz-fer/agente-conteudo/internal/api/base/handler"
	historysvc "github.com/jorguzz-fer/agente-conteudo/internal/api/history/service"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// HistoryHandler phục vụ danh sách lịch sử. service nil nghĩa là database
// chưa được cấu hình, khi đó trả mock data để front end vẫn hiển thị được.
type HistoryHandler struct {
	service *historysvc.ContentGenerationService
}

// NewHistoryHandler tạo handler, chấp nhận service nil
func NewHistoryHandler(service *historysvc.ContentGenerationService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// HandleList xử lý GET /content/history
func (h *HistoryHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if h.service == nil {
			logger.WithRequest(c).Warn("⚠️ Database chưa cấu hình, trả mock history data")
			basehdl.HandleResponse(c, mockHistory(), nil)
			return nil
		}

		records, err := h.service.FindRecent(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, records, nil)
		return nil
	})
}

// mockHistory trả danh sách mẫu, đánh dấu rõ là mock qua id
func mockHistory() []fiber.Map {
	now := time.Now()
	return []fiber.Map{
		{
			"id": "mock-1",
			"input_data": fiber.Map{
				"theme":    "Gestão Financeira para Pequenas Empresas",
				"audience": "Pequenos Empresários",
				"tone":     "profissional_direto",
			},
			"output_data": fiber.Map{
				"lede":      "Descubra como organizar suas finanças e aumentar a lucratividade do seu negócio.",
				"full_text": "Exemplo de matéria sobre gestão financeira...",
			},
			"created_at": now.Add(-24 * time.Hour).UnixMilli(),
		},
		{
			"id": "mock-2",
			"input_data": fiber.Map{
				"theme":    "Liderança e Motivação de Equipes",
				"audience": "Gerentes",
				"tone":     "didatico",
			},
			"output_data": fiber.Map{
				"lede":      "Aprenda técnicas práticas para engajar e motivar sua equipe.",
				"full_text": "Exemplo de matéria sobre liderança...",
			},
			"created_at": now.Add(-48 * time.Hour).UnixMilli(),
		},
	}
}
