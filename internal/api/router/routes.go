// Package router lắp toàn bộ route của ứng dụng: các domain router,
// health check và route tĩnh phục vụ ảnh upload.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"

	"github.com/jorguzz-fer/agente-conteudo/config"
	bulkimportrouter "github.com/jorguzz-fer/agente-conteudo/internal/api/bulkimport/router"
	contentrouter "github.com/jorguzz-fer/agente-conteudo/internal/api/content/router"
	historyrouter "github.com/jorguzz-fer/agente-conteudo/internal/api/history/router"
	historysvc "github.com/jorguzz-fer/agente-conteudo/internal/api/history/service"
	mediarouter "github.com/jorguzz-fer/agente-conteudo/internal/api/media/router"
	"github.com/jorguzz-fer/agente-conteudo/internal/delivery"
	"github.com/jorguzz-fer/agente-conteudo/internal/generation"
	"github.com/jorguzz-fer/agente-conteudo/internal/global"
	"github.com/jorguzz-fer/agente-conteudo/internal/storage"
)

// SetupRoutes khởi tạo các dependency dùng chung và đăng ký tất cả route.
// Các collaborator vắng mặt trong config (webhook, database) không làm
// fail khởi động: từng domain tự degrade theo cách của nó.
func SetupRoutes(app *fiber.App, cfg *config.Configuration) error {
	sender := delivery.NewSender(cfg.N8NWebhookURL)
	dispatcher := delivery.NewDispatcher(sender, delivery.FixedDelayPacer{Delay: cfg.BulkSendDelay()})
	generator := generation.New(cfg)

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("khởi tạo upload store: %w", err)
	}

	var history *historysvc.ContentGenerationService
	if global.MongoDB_Session != nil {
		collection, ok := global.RegistryCollections.Get(global.ColNames.ContentGenerations)
		if !ok {
			return fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.ContentGenerations)
		}
		history = historysvc.NewContentGenerationService(collection)
	}

	v1 := app.Group("/api/v1")

	contentrouter.Register(v1, generator, sender, history)
	bulkimportrouter.Register(v1, dispatcher)
	historyrouter.Register(v1, history)
	mediarouter.Register(v1, store)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"webhook":  sender.Configured(),
			"database": global.MongoDB_Session != nil,
		})
	})

	// Phục vụ ảnh upload qua /uploads/<filename>
	app.Use("/uploads", static.New(store.Dir()))

	return nil
}
