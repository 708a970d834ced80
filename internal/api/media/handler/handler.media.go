// Package mediahdl - Handler upload ảnh cho nội dung.
package mediahdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/jorguzz-fer/agente-conteudo/internal/api/base/handler"
	"github.com/jorguzz-fer/agente-conteudo/internal/common"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
	"github.com/jorguzz-fer/agente-conteudo/internal/storage"
)

// MediaHandler xử lý API upload ảnh.
type MediaHandler struct {
	store *storage.LocalStore
}

// NewMediaHandler tạo MediaHandler mới.
func NewMediaHandler(store *storage.LocalStore) *MediaHandler {
	return &MediaHandler{store: store}
}

// HandleUploadImage xử lý POST /media/upload-image — nhận ảnh dạng
// base64 data URL, lưu xuống đĩa và trả về URL công khai.
func (h *MediaHandler) HandleUploadImage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input struct {
			Image string `json:"image"`
		}
		if err := c.Bind().Body(&input); err != nil || input.Image == "" {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Vui lòng cung cấp ảnh dạng base64 data URL",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		url, err := h.store.SaveDataURL(input.Image)
		if err != nil {
			logger.WithRequest(c).Errorf("❌ Upload ảnh thất bại: %v", err)
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{"url": url}, nil)
		return nil
	})
}
