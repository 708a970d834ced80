// Package bulkimporthdl - Handler import spreadsheet và gửi hàng loạt.
package bulkimporthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/jorguzz-fer/agente-conteudo/internal/api/base/handler"
	bulkimportdto "github.com/jorguzz-fer/agente-conteudo/internal/api/bulkimport/dto"
	"github.com/jorguzz-fer/agente-conteudo/internal/common"
	"github.com/jorguzz-fer/agente-conteudo/internal/delivery"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// BulkImportHandler xử lý API import và gửi hàng loạt.
type BulkImportHandler struct {
	dispatcher *delivery.Dispatcher
}

// NewBulkImportHandler tạo BulkImportHandler mới.
func NewBulkImportHandler(dispatcher *delivery.Dispatcher) *BulkImportHandler {
	return &BulkImportHandler{dispatcher: dispatcher}
}

// HandleBulkPublish xử lý POST /content/bulk-publish — gửi tuần tự từng
// dòng đã validate tới webhook, lỗi của dòng nào ghi nhận riêng dòng đó.
func (h *BulkImportHandler) HandleBulkPublish(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input bulkimportdto.BulkPublishInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}

		if len(input.Items) == 0 {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"No items provided",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		logger.WithRequest(c).Infof("📦 Bulk publish %d dòng", len(input.Items))

		result := h.dispatcher.Dispatch(c.Context(), input.Items)
		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
