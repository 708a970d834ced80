package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorguzz-fer/agente-conteudo/internal/common"
)

func TestAgentGenerate_ForwardsRequestVerbatim(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		json.NewEncoder(w).Encode(Content{Theme: "X", FullText: "TEMA: X"})
	}))
	defer server.Close()

	g := NewAgentGenerator(server.URL)
	content, err := g.Generate(context.Background(), Request{
		Theme:   "X",
		Context: "contexto extra",
		CTAText: "Saiba mais",
	})

	assert.NoError(t, err)
	assert.Equal(t, "TEMA: X", content.FullText)
	assert.Equal(t, "X", received["theme"])
	assert.Equal(t, "contexto extra", received["context"])
	assert.Equal(t, "Saiba mais", received["cta_text"])
}

func TestAgentGenerate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("agent exploded"))
	}))
	defer server.Close()

	g := NewAgentGenerator(server.URL)
	_, err := g.Generate(context.Background(), Request{Theme: "X"})

	assert.Error(t, err)
	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeUpstreamAgent.Code, customErr.Code.Code)
	assert.Equal(t, common.StatusBadGateway, customErr.StatusCode)
}

func TestAgentGenerate_MissingFullTextIsHardError(t *testing.T) {
	// Response thiếu full_text bị coi là malformed, không được tự vá
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"theme": "X", "lede": "só isso"})
	}))
	defer server.Close()

	g := NewAgentGenerator(server.URL)
	_, err := g.Generate(context.Background(), Request{Theme: "X"})

	assert.Error(t, err)
	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeUpstreamAgent.Code, customErr.Code.Code)
}

func TestAgentGenerate_NonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	g := NewAgentGenerator(server.URL)
	_, err := g.Generate(context.Background(), Request{Theme: "X"})

	assert.Error(t, err)
}
