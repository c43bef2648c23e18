package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"game-matchmaker/internal/domain/entity"

	"github.com/goccy/go-json"
)

func TestGroqGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer gsk_test" {
			t.Errorf("unexpected auth header %q", auth)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"model": "llama-3.3-70b-versatile",
			"choices": [{"message": {"role": "assistant", "content": " {\"recommendations\": []} "}, "finish_reason": "stop"}],
			"usage": {"total_tokens": 321}
		}`)
	}))
	defer srv.Close()

	c := NewGroqClient("gsk_test", "llama-3.3-70b-versatile", srv.URL+"/openai/v1/", 0)
	resp, err := c.Generate(context.Background(), entity.AIRequest{SystemInstruction: "sys", Prompt: "user prompt"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if resp.Content != `{"recommendations": []}` {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if resp.TokenCount != 321 {
		t.Errorf("expected 321 tokens, got %d", resp.TokenCount)
	}
	if resp.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected model %q", resp.Model)
	}

	if got.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected request model %q", got.Model)
	}
	if got.ResponseFormat.Type != "json_object" {
		t.Errorf("expected json_object response format, got %q", got.ResponseFormat.Type)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[0].Content != "sys" ||
		got.Messages[1].Role != "user" || got.Messages[1].Content != "user prompt" {
		t.Errorf("unexpected messages %+v", got.Messages)
	}
}

func TestGroqGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "auth failure",
			status:  http.StatusUnauthorized,
			body:    `{"error": {"message": "Invalid API Key", "type": "invalid_request_error", "code": "invalid_api_key"}}`,
			wantMsg: "status 401: Invalid API Key",
		},
		{
			name:    "gateway failure without json",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantMsg: "status 502",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices": []}`,
			wantErr: entity.ErrEmptyCompletion,
		},
		{
			name:    "blank content",
			status:  http.StatusOK,
			body:    `{"choices": [{"message": {"role": "assistant", "content": "   "}}]}`,
			wantErr: entity.ErrEmptyCompletion,
		},
		{
			name:    "garbage",
			status:  http.StatusOK,
			body:    `not json`,
			wantMsg: "groq response parse",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := NewGroqClient("gsk_test", "m", srv.URL, 0)
			_, err := c.Generate(context.Background(), entity.AIRequest{Prompt: "p"})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected %q in %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestGroqMissingKeyFailsWithoutNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewGroqClient("  ", "m", srv.URL, 0)
	_, err := c.Generate(context.Background(), entity.AIRequest{Prompt: "p"})
	if !errors.Is(err, entity.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if called {
		t.Fatal("no request should be sent without a key")
	}
}

func TestGroqDefaultBaseURL(t *testing.T) {
	c := NewGroqClient("k", "m", "", 0)
	if c.baseURL != DefaultGroqBaseURL {
		t.Fatalf("expected default base URL, got %q", c.baseURL)
	}
	if c.httpClient.Timeout != 0 {
		t.Fatalf("expected no timeout, got %v", c.httpClient.Timeout)
	}
}
