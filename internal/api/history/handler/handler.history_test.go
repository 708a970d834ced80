package historyhdl

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func TestHandleList_NoDatabaseReturnsMockData(t *testing.T) {
	// service nil mô phỏng trường hợp database chưa được cấu hình
	app := fiber.New()
	app.Get("/api/v1/content/history", NewHistoryHandler(nil).HandleList)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/history", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "success", envelope["status"])

	data := envelope["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	// Mock data được đánh dấu rõ qua id để không nhầm với dữ liệu thật
	assert.Equal(t, "mock-1", first["id"])
	assert.NotNil(t, first["input_data"])
	assert.NotNil(t, first["output_data"])
	assert.NotNil(t, first["created_at"])
}
