// Package router đăng ký các route thuộc domain BulkImport.
package router

import (
	"github.com/gofiber/fiber/v3"

	bulkimporthdl "github.com/jorguzz-fer/agente-conteudo/internal/api/bulkimport/handler"
	"github.com/jorguzz-fer/agente-conteudo/internal/delivery"
)

// Register đăng ký tất cả route BulkImport lên v1.
func Register(v1 fiber.Router, dispatcher *delivery.Dispatcher) {
	handler := bulkimporthdl.NewBulkImportHandler(dispatcher)

	v1.Post("/content/import", handler.HandleImport)
	v1.Post("/content/bulk-publish", handler.HandleBulkPublish)
}
