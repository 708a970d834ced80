package storage

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorguzz-fer/agente-conteudo/internal/common"
)

// pngDataURL tạo một data URL hợp lệ từ vài byte giả
func pngDataURL(raw []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestSaveDataURL_WritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080")
	assert.NoError(t, err)

	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	url, err := store.SaveDataURL(pngDataURL(raw))

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// File phải tồn tại trên đĩa với đúng nội dung
	filename := url[strings.LastIndex(url, "/")+1:]
	written, err := os.ReadFile(filepath.Join(dir, filename))
	assert.NoError(t, err)
	assert.Equal(t, raw, written)
}

func TestSaveDataURL_MalformedDataURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	assert.NoError(t, err)

	for _, input := range []string{
		"not a data url",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,khong-phai-base64-section",
	} {
		_, err := store.SaveDataURL(input)
		assert.Error(t, err, "input: %s", input)

		var customErr *common.Error
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	}
}

func TestSaveDataURL_InvalidBase64(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	assert.NoError(t, err)

	_, err = store.SaveDataURL("data:image/png;base64,!!!khong-hop-le!!!")

	assert.Error(t, err)
	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeValidationFormat.Code, customErr.Code.Code)
}

func TestSaveDataURL_UniqueFilenames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	assert.NoError(t, err)

	dataURL := pngDataURL([]byte("same content"))
	first, err1 := store.SaveDataURL(dataURL)
	second, err2 := store.SaveDataURL(dataURL)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEqual(t, first, second)
}

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStore(dir, "")

	assert.NoError(t, err)
	info, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
