package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eduassist/eduassist-backend/internal/config"
	"github.com/eduassist/eduassist-backend/internal/logger"
)

func newTestClient(t *testing.T, baseURL string) AIClient {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	client, err := NewAIClient(log, config.GatewayConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "gpt-4",
		MaxTokens:      4000,
		Temperature:    0.7,
		TimeoutSeconds: 5,
	})
	if err != nil {
		t.Fatalf("client init: %v", err)
	}
	return client
}

func TestCompleteSendsChatContract(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "  raw model text "}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	out, err := client.Complete(context.Background(), "build a quiz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No trimming: the parser owns interpretation.
	if out != "  raw model text " {
		t.Fatalf("content = %q, want verbatim text", out)
	}

	if gotPath != "/api/chat" {
		t.Fatalf("path = %q, want /api/chat", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotBody.Model != "gpt-4" || gotBody.MaxTokens != 4000 || gotBody.Temperature != 0.7 {
		t.Fatalf("body = %+v", gotBody)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "build a quiz" {
		t.Fatalf("messages = %+v", gotBody.Messages)
	}
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "prompt")
	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gatewayErr.Status != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", gatewayErr.Status)
	}
}

func TestCompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "prompt")
	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gatewayErr.Status != 0 {
		t.Fatalf("status = %d, want 0 for transport failure", gatewayErr.Status)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "prompt")
	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError for empty choices, got %v", err)
	}
}
