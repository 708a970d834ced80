// Package router đăng ký các route thuộc domain Content: generate, publish.
package router

import (
	"github.com/gofiber/fiber/v3"

	contenthdl "github.com/jorguzz-fer/agente-conteudo/internal/api/content/handler"
	contentsvc "github.com/jorguzz-fer/agente-conteudo/internal/api/content/service"
	historysvc "github.com/jorguzz-fer/agente-conteudo/internal/api/history/service"
	"github.com/jorguzz-fer/agente-conteudo/internal/delivery"
	"github.com/jorguzz-fer/agente-conteudo/internal/generation"
)

// Register đăng ký tất cả route Content lên v1.
func Register(v1 fiber.Router, generator generation.Generator, sender *delivery.Sender, history *historysvc.ContentGenerationService) {
	// Không gán pointer nil vào interface: interface khác nil sẽ bị gọi method
	var recorder contentsvc.HistoryRecorder
	if history != nil {
		recorder = history
	}
	publishService := contentsvc.NewPublishService(sender, recorder)
	handler := contenthdl.NewContentHandler(generator, publishService)

	v1.Post("/content/generate", handler.HandleGenerate)
	v1.Post("/content/publish", handler.HandlePublish)
}
