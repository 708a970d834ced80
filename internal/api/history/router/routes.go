// Package router đăng ký các route thuộc domain History.
package router

import (
	"github.com/gofiber/fiber/v3"

	historyhdl "github.com/jorguzz-fer/agente-conteudo/internal/api/history/handler"
	historysvc "github.com/jorguzz-fer/agente-conteudo/internal/api/history/service"
)

// Register đăng ký route lịch sử lên v1. service nil là hợp lệ (chưa có DB).
func Register(v1 fiber.Router, service *historysvc.ContentGenerationService) {
	handler := historyhdl.NewHistoryHandler(service)
	v1.Get("/content/history", handler.HandleList)
}
