package contenthdl

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	contentsvc "github.com/jorguzz-fer/agente-conteudo/internal/api/content/service"
	"github.com/jorguzz-fer/agente-conteudo/internal/delivery"
	"github.com/jorguzz-fer/agente-conteudo/internal/generation"
)

// newTestApp dựng app với mock generator (không delay) và webhook tùy chọn
func newTestApp(webhookURL string) *fiber.App {
	app := fiber.New()
	sender := delivery.NewSender(webhookURL)
	handler := NewContentHandler(
		&generation.MockGenerator{Delay: 0},
		contentsvc.NewPublishService(sender, nil),
	)
	app.Post("/api/v1/content/generate", handler.HandleGenerate)
	app.Post("/api/v1/content/publish", handler.HandlePublish)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func TestHandleGenerate_Success(t *testing.T) {
	app := newTestApp("")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/generate",
		strings.NewReader(`{"theme":"Gestão Financeira","audience":"Empresários"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "success", envelope["status"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Gestão Financeira", data["theme"])
	assert.Equal(t, "Empresários", data["audience"])
	assert.NotEmpty(t, data["full_text"])
}

func TestHandleGenerate_MissingTheme(t *testing.T) {
	app := newTestApp("")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "error", envelope["status"])
}

func TestHandleGenerate_RejectsXSSTheme(t *testing.T) {
	app := newTestApp("")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/generate",
		strings.NewReader(`{"theme":"<script>alert(1)</script>"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlePublish_WebhookNotConfigured(t *testing.T) {
	// Webhook vắng mặt thì degrade có nhãn rõ ràng, không phải lỗi 500
	app := newTestApp("")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/publish",
		strings.NewReader(`{"theme":"X","full_text":"TEMA: X"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, false, data["success"])
	assert.Equal(t, "webhook not configured", data["message"])
}

func TestHandlePublish_ForwardsToWebhook(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
	}))
	defer server.Close()

	app := newTestApp(server.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/publish",
		strings.NewReader(`{"theme":"X","full_text":"TEMA: X","image_url":"http://img/1.png","target":"g1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["success"])

	assert.Equal(t, "TEMA: X", received["full_text"])
	assert.Equal(t, "http://img/1.png", received["image_url"])
}

func TestHandlePublish_UpstreamFailureIs502(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("n8n down"))
	}))
	defer server.Close()

	app := newTestApp(server.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/publish",
		strings.NewReader(`{"theme":"X","full_text":"TEMA: X"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "error", envelope["status"])
}
