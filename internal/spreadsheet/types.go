// Package spreadsheet xử lý import nội dung hàng loạt từ bảng tính:
// parse CSV/XLSX/Google Sheet thành các row thô và validate theo schema tối thiểu.
package spreadsheet

// RawRow là một record thô đọc từ bảng tính, key theo tên cột ở header
type RawRow map[string]string

// ContentRow là một đơn vị nội dung sẽ được publish, lấy từ một dòng bảng tính.
// Một row chỉ hợp lệ khi title, text và target đều khác rỗng sau khi trim.
type ContentRow struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	Target   string `json:"target"`
}

// ValidationResult là kết quả validate toàn bộ bảng tính.
// Valid=true khi và chỉ khi Errors rỗng; khi Valid=false thì Data luôn rỗng,
// caller không bao giờ được dùng output hợp lệ một phần.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []string     `json:"errors"`
	Data   []ContentRow `json:"data"`
}
