package spreadsheet

import (
	"fmt"
	"strings"
)

// Tên cột bắt buộc và optional trong bảng tính import
const (
	colTitle    = "title"
	colSubtitle = "subtitle"
	colText     = "text"
	colImageURL = "image_url"
	colTarget   = "target"
)

// ErrEmptySpreadsheet là message khi bảng tính không có dòng dữ liệu nào
const ErrEmptySpreadsheet = "spreadsheet is empty"

// Validate kiểm tra các row thô theo schema tối thiểu: title, text, target
// bắt buộc khác rỗng sau khi trim. Hàm pure, không side effect.
//
// Số dòng trong message lỗi là index+2: bảng tính đánh số từ 1 và dòng đầu
// là header, nên dòng dữ liệu thứ nhất hiển thị là "Row 2".
// Mọi lỗi đều được liệt kê đầy đủ, không dừng ở lỗi đầu tiên.
func Validate(rows []RawRow) ValidationResult {
	errs := []string{}
	validData := []ContentRow{}

	if len(rows) == 0 {
		return ValidationResult{Valid: false, Errors: []string{ErrEmptySpreadsheet}, Data: []ContentRow{}}
	}

	for index, row := range rows {
		rowErrs := []string{}
		rowNum := index + 2

		title := strings.TrimSpace(row[colTitle])
		text := strings.TrimSpace(row[colText])
		target := strings.TrimSpace(row[colTarget])

		if title == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Title is required", rowNum))
		}
		if text == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Text is required", rowNum))
		}
		if target == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Target is required", rowNum))
		}

		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}

		// Row chỉ được nhận toàn bộ hoặc loại toàn bộ, không nhận một phần
		validData = append(validData, ContentRow{
			Title:    title,
			Subtitle: strings.TrimSpace(row[colSubtitle]),
			Text:     text,
			ImageURL: strings.TrimSpace(row[colImageURL]),
			Target:   target,
		})
	}

	if len(errs) > 0 {
		// Có lỗi thì Data phải rỗng: không cho caller dùng kết quả hợp lệ một phần
		return ValidationResult{Valid: false, Errors: errs, Data: []ContentRow{}}
	}

	return ValidationResult{Valid: true, Errors: errs, Data: validData}
}
