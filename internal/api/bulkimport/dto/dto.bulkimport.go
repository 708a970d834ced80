// Package bulkimportdto định nghĩa các struct input cho domain BulkImport.
package bulkimportdto

import (
	"github.com/jorguzz-fer/agente-conteudo/internal/spreadsheet"
)

// BulkPublishInput là body của POST /content/bulk-publish
type BulkPublishInput struct {
	Items []spreadsheet.ContentRow `json:"items"`
}

// SheetImportInput là body JSON của POST /content/import khi import từ
// Google Sheet công khai thay vì upload file
type SheetImportInput struct {
	SheetURL string `json:"sheet_url" validate:"required"`
}
