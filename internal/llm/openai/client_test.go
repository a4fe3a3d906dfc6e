package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCompleteSendsMessagesAndReturnsContent(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "It says hello."}},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", server.URL, "llama-3.1-8b-instant", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	got, err := client.Complete(context.Background(), "system text", "user question")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "It says hello." {
		t.Fatalf("content = %q, want %q", got, "It says hello.")
	}

	if captured.Model != "llama-3.1-8b-instant" {
		t.Fatalf("model = %q", captured.Model)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != "system text" {
		t.Fatalf("system message = %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "user question" {
		t.Fatalf("user message = %+v", captured.Messages[1])
	}
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key", "type": "auth_error"},
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("bad-key", server.URL, "llama-3.1-8b-instant", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error from API error response")
	}
}

func TestCompleteMissingChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", server.URL, "llama-3.1-8b-instant", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for missing choices")
	}
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		model   string
	}{
		{name: "missing key", apiKey: "", baseURL: "https://api.groq.com/openai/v1", model: "llama-3.1-8b-instant"},
		{name: "missing base url", apiKey: "k", baseURL: " ", model: "llama-3.1-8b-instant"},
		{name: "missing model", apiKey: "k", baseURL: "https://api.groq.com/openai/v1", model: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(tt.apiKey, tt.baseURL, tt.model, 0); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
