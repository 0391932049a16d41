package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/recapd/internal/core"
	"github.com/sandevgo/recapd/internal/service/chat"
	"github.com/sandevgo/recapd/internal/storage/memory"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Complete(ctx context.Context, messages []core.Message, opts core.CompletionOptions) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestRouter(p core.AIProvider) (*gin.Engine, *memory.SessionStore) {
	gin.SetMode(gin.TestMode)
	store := memory.NewSessionStore(time.Hour, 50)
	svc := chat.NewService(p, store, 6000)

	router := gin.New()
	router.Use(corsMiddleware())
	newHandler(svc).RegisterRoutes(router)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSummarize_TranscriptTooShort(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{reply: "unused"})

	w := doJSON(t, router, http.MethodPost, "/api/summarize", `{"transcript":"ten chars."}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSummarize_OK(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{reply: "A concise summary."})

	transcript := strings.Repeat("spoken words ", 16) // ~200 chars
	body, _ := json.Marshal(map[string]any{"transcript": transcript, "max_tokens": 300})

	w := doJSON(t, router, http.MethodPost, "/api/summarize", string(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summary":"A concise summary."}`, w.Body.String())
}

func TestChat_NewSession(t *testing.T) {
	router, store := newTestRouter(&stubProvider{reply: `{"answer":"42","suggestions":["why?"]}`})

	w := doJSON(t, router, http.MethodPost, "/api/chat",
		`{"action":"qa","context":"a transcript about deep questions","question":"what is the answer?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "qa", resp.Action)
	assert.Equal(t, "42", resp.Response)
	assert.Equal(t, []string{"why?"}, resp.Suggestions)
	require.NotEmpty(t, resp.SessionID)

	history, err := store.History(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, core.RoleAssistant, history[1].Role)
}

func TestChat_UnknownAction(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{reply: "unused"})

	w := doJSON(t, router, http.MethodPost, "/api/chat",
		`{"action":"translate","question":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{reply: "unused"})

	w := doJSON(t, router, http.MethodPost, "/api/chat", `{"action": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_ProviderOutage(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{err: core.ErrProviderUnavailable})

	w := doJSON(t, router, http.MethodPost, "/api/chat",
		`{"action":"qa","question":"anyone home?"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, `{"error":"the model is currently unavailable"}`, w.Body.String())
}

func TestChat_ProviderOverloaded(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{err: core.ErrProviderOverloaded})

	w := doJSON(t, router, http.MethodPost, "/api/chat",
		`{"action":"qa","question":"too much?"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{})

	w := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
