// Package storage lưu ảnh upload lên đĩa local và trả về URL công khai
// phục vụ qua route tĩnh /uploads.
package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jorguzz-fer/agente-conteudo/internal/common"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// dataURLPattern khớp data URL dạng data:image/<ext>;base64,<payload>
var dataURLPattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

// LocalStore lưu file vào một thư mục trên đĩa
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore tạo store tại dir, tự tạo thư mục nếu chưa có.
// baseURL là gốc URL công khai (rỗng thì URL trả về là đường dẫn tương đối).
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, common.NewError(common.ErrCodeStorage, "Không tạo được thư mục upload", common.StatusInternalServerError, err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir trả về thư mục lưu file, dùng để mount route tĩnh
func (s *LocalStore) Dir() string {
	return s.dir
}

// SaveDataURL decode một data URL base64 thành file ảnh trên đĩa và
// trả về URL công khai. Data URL sai định dạng trả lỗi 400.
func (s *LocalStore) SaveDataURL(dataURL string) (string, error) {
	log := logger.GetAppLogger()

	matches := dataURLPattern.FindStringSubmatch(dataURL)
	if matches == nil {
		return "", common.NewError(common.ErrCodeValidationFormat, "Ảnh không đúng định dạng data URL base64", common.StatusBadRequest, nil)
	}
	ext, payload := matches[1], matches[2]

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationFormat, "Dữ liệu base64 của ảnh không hợp lệ", common.StatusBadRequest, err)
	}

	filename := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", common.NewError(common.ErrCodeStorage, "Không ghi được file ảnh", common.StatusInternalServerError, err)
	}

	publicURL := fmt.Sprintf("%s/uploads/%s", s.baseURL, filename)
	log.Infof("📦 Đã lưu ảnh upload: %s (%d bytes)", filename, len(raw))
	return publicURL, nil
}
