// Package router đăng ký các route thuộc domain Media.
package router

import (
	"github.com/gofiber/fiber/v3"

	mediahdl "github.com/jorguzz-fer/agente-conteudo/internal/api/media/handler"
	"github.com/jorguzz-fer/agente-conteudo/internal/storage"
)

// Register đăng ký route upload ảnh lên v1.
func Register(v1 fiber.Router, store *storage.LocalStore) {
	handler := mediahdl.NewMediaHandler(store)
	v1.Post("/media/upload-image", handler.HandleUploadImage)
}
