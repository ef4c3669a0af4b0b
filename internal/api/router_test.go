package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "apichat/docs"
	"apichat/internal/api/middleware"
	"apichat/internal/client"
	"apichat/internal/models"
	"apichat/internal/prompts"
	"apichat/internal/service"
	"apichat/internal/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingClient struct {
	sent []models.Message
}

func (r *recordingClient) Chat(_ context.Context, req *client.ChatRequest) (*client.ChatResponse, error) {
	r.sent = req.Messages
	return &client.ChatResponse{
		Model:   req.Model,
		Message: models.Message{Role: util.RoleAssistant, Content: "¡Hola! ¿Cómo estás?"},
		Done:    true,
	}, nil
}

func (r *recordingClient) Health(context.Context) (bool, error) { return true, nil }

func newTestRouter() (*gin.Engine, *recordingClient) {
	rc := &recordingClient{}
	return Router(service.NewLLMService(rc)), rc
}

func TestRouter_Healthcheck(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"Greetings from API Chat AI (DAS 2026)"`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_ChatEndToEnd(t *testing.T) {
	r, rc := newTestRouter()

	body := `{"messages":[{"role":"user","content":"hola"},{"role":"assistant","content":"¿sí?"},{"role":"user","content":"adiós"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, rc.sent, 4)
	assert.Equal(t, models.Message{Role: util.RoleSystem, Content: prompts.ChatSystemPrompt}, rc.sent[0])
	assert.Equal(t, "hola", rc.sent[1].Content)
	assert.Equal(t, "¿sí?", rc.sent[2].Content)
	assert.Equal(t, "adiós", rc.sent[3].Content)

	var resp struct {
		Success  bool                `json:"success"`
		Data     models.ChatResponse `json:"data"`
		Metadata models.Metadata     `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "¡Hola! ¿Cómo estás?", resp.Data.Response)
	assert.Equal(t, "req-42", resp.Metadata.RequestID)
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter()

	// generate at least one sample
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/healthcheck", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "apichat_http_requests_total")
	assert.Contains(t, rec.Body.String(), `path="/api/healthcheck"`)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/healthcheck")
	assert.Contains(t, paths, "/api/chat")
}

func TestRouter_MethodNotRouted(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chat", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
