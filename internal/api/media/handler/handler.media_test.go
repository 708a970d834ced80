package mediahdl

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"github.com/jorguzz-fer/agente-conteudo/internal/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir(), "http://localhost:8080")
	assert.NoError(t, err)

	app := fiber.New()
	app.Post("/api/v1/media/upload-image", NewMediaHandler(store).HandleUploadImage)
	return app
}

func TestHandleUploadImage_Success(t *testing.T) {
	app := newTestApp(t)

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50})
	payload := fmt.Sprintf(`{"image":%q}`, dataURL)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload-image", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &envelope))

	data := envelope["data"].(map[string]interface{})
	url := data["url"].(string)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestHandleUploadImage_MissingImage(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload-image", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleUploadImage_MalformedDataURL(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload-image",
		strings.NewReader(`{"image":"nao-e-data-url"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
