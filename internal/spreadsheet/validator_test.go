package spreadsheet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRow(target string) RawRow {
	return RawRow{
		"title":    "Tiêu đề",
		"subtitle": "Phụ đề",
		"text":     "Nội dung chính",
		"target":   target,
	}
}

func TestValidate_EmptySpreadsheet(t *testing.T) {
	result := Validate([]RawRow{})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"spreadsheet is empty"}, result.Errors)
	assert.Empty(t, result.Data)
}

func TestValidate_MissingTitleRowTwo(t *testing.T) {
	// Dòng dữ liệu đầu tiên hiển thị là Row 2 (dòng 1 là header)
	rows := []RawRow{
		{"title": "", "text": "Nội dung", "target": "group-1"},
	}
	result := Validate(rows)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Row 2: Title is required")
	assert.Empty(t, result.Data)
}

func TestValidate_AllMissingFieldsReported(t *testing.T) {
	// Một dòng thiếu nhiều field thì mọi lỗi đều được liệt kê, không dừng sớm
	rows := []RawRow{
		{"title": "  ", "text": "", "target": ""},
		validRow("group-1"),
		{"title": "Có title", "text": "", "target": "group-2"},
	}
	result := Validate(rows)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Row 2: Title is required",
		"Row 2: Text is required",
		"Row 2: Target is required",
		"Row 4: Text is required",
	}, result.Errors)
	// Có lỗi thì Data phải rỗng dù dòng 3 hợp lệ
	assert.Empty(t, result.Data)
}

func TestValidate_AllValid(t *testing.T) {
	rows := []RawRow{
		validRow("group-1"),
		{"title": " Trim me ", "text": " nội dung ", "target": " group-2 ", "image_url": " http://img "},
	}
	result := Validate(rows)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Data, 2)

	// Giá trị được trim trước khi đưa vào ContentRow
	assert.Equal(t, "Trim me", result.Data[1].Title)
	assert.Equal(t, "nội dung", result.Data[1].Text)
	assert.Equal(t, "group-2", result.Data[1].Target)
	assert.Equal(t, "http://img", result.Data[1].ImageURL)
}

func TestValidate_PreservesRowOrder(t *testing.T) {
	rows := make([]RawRow, 0, 5)
	for i := 0; i < 5; i++ {
		rows = append(rows, validRow(fmt.Sprintf("group-%d", i)))
	}
	result := Validate(rows)

	assert.True(t, result.Valid)
	for i, row := range result.Data {
		assert.Equal(t, fmt.Sprintf("group-%d", i), row.Target)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	rows := []RawRow{
		{"title": "", "text": "x", "target": ""},
		validRow("g"),
	}
	first := Validate(rows)
	second := Validate(rows)

	assert.Equal(t, first, second)
}
