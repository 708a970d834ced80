package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseFile parse một file bảng tính theo extension của tên file.
// Hỗ trợ .csv và .xlsx; các extension khác trả về lỗi mô tả, không bao giờ
// trả về row set một phần.
func ParseFile(filename string, r io.Reader) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx":
		return ParseExcel(r)
	case ".xls":
		// excelize chỉ đọc được định dạng OOXML
		return nil, fmt.Errorf("legacy .xls format is not supported, convert the file to .xlsx")
	default:
		return nil, fmt.Errorf("unsupported file format, use CSV or Excel (.xlsx)")
	}
}

// ParseCSV parse delimited text: record đầu tiên là header, các record sau
// trở thành RawRow key theo tên header. Dòng trống bị bỏ qua.
func ParseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Số cột có thể lệch giữa các dòng
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV parsing error: %w", err)
	}
	if len(records) == 0 {
		return []RawRow{}, nil
	}

	header := records[0]
	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := RawRow{}
		for i, name := range header {
			if i < len(record) {
				row[strings.TrimSpace(name)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseExcel parse spreadsheet binary (OOXML): chỉ đọc sheet đầu tiên,
// dòng đầu là header.
func ParseExcel(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("Excel parsing error: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel parsing error: workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("Excel parsing error: %w", err)
	}
	if len(records) == 0 {
		return []RawRow{}, nil
	}

	header := records[0]
	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := RawRow{}
		for i, name := range header {
			if i < len(record) {
				row[strings.TrimSpace(name)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isBlankRecord kiểm tra record chỉ gồm các cell trống
func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
