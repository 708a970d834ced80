package bulkimporthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/jorguzz-fer/agente-conteudo/internal/api/base/handler"
	bulkimportdto "github.com/jorguzz-fer/agente-conteudo/internal/api/bulkimport/dto"
	"github.com/jorguzz-fer/agente-conteudo/internal/common"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
	"github.com/jorguzz-fer/agente-conteudo/internal/spreadsheet"
)

// HandleImport xử lý POST /content/import — nhận file multipart (CSV/XLSX)
// hoặc body JSON {sheet_url} trỏ tới Google Sheet công khai, parse và
// validate rồi trả kết quả. Validate fail vẫn trả 200 kèm danh sách lỗi
// để front end hiển thị từng dòng.
func (h *BulkImportHandler) HandleImport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.WithRequest(c)

		rows, err := h.readRows(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				err.Error(),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		result := spreadsheet.Validate(rows)
		log.Infof("📦 Import: %d dòng, valid=%v, %d lỗi", len(rows), result.Valid, len(result.Errors))

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// readRows đọc raw rows từ file upload hoặc từ sheet_url trong body JSON
func (h *BulkImportHandler) readRows(c fiber.Ctx) ([]spreadsheet.RawRow, error) {
	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return spreadsheet.ParseFile(fileHeader.Filename, f)
	}

	var input bulkimportdto.SheetImportInput
	if err := c.Bind().Body(&input); err != nil || input.SheetURL == "" {
		return nil, common.ErrRequiredField
	}
	return spreadsheet.FetchGoogleSheet(c.Context(), input.SheetURL)
}
