package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sandevgo/recapd/internal/core"
)

func newTestProvider(url string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    url,
		APIKey:     "test-key",
		Model:      "test-model",
		Timeout:    2 * time.Second,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotPayload struct {
		Model    string         `json:"model"`
		Messages []core.Message `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(completionBody("hello there")))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	got, err := p.Complete(context.Background(), []core.Message{
		{Role: core.RoleUser, Content: "hi"},
	}, core.CompletionOptions{Temperature: 0.7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello there" {
		t.Errorf("expected %q, got %q", "hello there", got)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotPayload.Model != "test-model" {
		t.Errorf("unexpected model %q", gotPayload.Model)
	}
	if len(gotPayload.Messages) != 1 || gotPayload.Messages[0].Content != "hi" {
		t.Errorf("unexpected messages: %+v", gotPayload.Messages)
	}
}

func TestComplete_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, core.ErrProviderOverloaded},
		{"payload too large", http.StatusRequestEntityTooLarge, core.ErrProviderOverloaded},
		{"server error", http.StatusInternalServerError, core.ErrProviderUnavailable},
		{"bad gateway", http.StatusBadGateway, core.ErrProviderUnavailable},
		{"unauthorized", http.StatusUnauthorized, core.ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream detail that must not leak", tt.status)
			}))
			defer srv.Close()

			p := newTestProvider(srv.URL)
			_, err := p.Complete(context.Background(), nil, core.CompletionOptions{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if err != nil && len(err.Error()) > len(tt.wantErr.Error()) {
				t.Errorf("error leaks upstream detail: %q", err)
			}
		})
	}
}

func TestComplete_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	p := newTestProvider(srv.URL)
	_, err := p.Complete(context.Background(), nil, core.CompletionOptions{})
	if !errors.Is(err, core.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.Complete(context.Background(), nil, core.CompletionOptions{})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}
