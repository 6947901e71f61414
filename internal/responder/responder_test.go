package responder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeOllama(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req ollamaChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) == 0 {
			http.Error(w, "no messages", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: message{Role: "assistant", Content: reply},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOllamaChat(t *testing.T) {
	srv := fakeOllama(t, "你好")
	o := NewOllama(srv.URL, "llama3.2")

	if !o.Available(context.Background()) {
		t.Fatal("expected availability probe to pass")
	}
	reply, err := o.Chat(context.Background(), "介绍自己", "")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "你好" {
		t.Errorf("unexpected reply %q", reply)
	}
}

func TestOllamaUnavailable(t *testing.T) {
	o := NewOllama("http://127.0.0.1:1", "llama3.2")
	if o.Available(context.Background()) {
		t.Error("expected probe to fail against a closed port")
	}
}

func TestOpenAIChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"remote reply"}}]}`))
	}))
	defer srv.Close()

	o := NewOpenAI(srv.URL, "test-key", "")
	reply, err := o.Chat(context.Background(), "hi", "system")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "remote reply" {
		t.Errorf("unexpected reply %q", reply)
	}
}

func TestOpenAIMissingKey(t *testing.T) {
	o := NewOpenAI("", "", "")
	if _, err := o.Chat(context.Background(), "hi", ""); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestHybridPrefersLocal(t *testing.T) {
	srv := fakeOllama(t, "local reply")
	h := &Hybrid{Local: NewOllama(srv.URL, "llama3.2")}

	if got := h.Think(context.Background(), "hi", ""); got != "local reply" {
		t.Errorf("expected local reply, got %q", got)
	}
}

func TestHybridFallbackWhenLocalDown(t *testing.T) {
	h := &Hybrid{Local: NewOllama("http://127.0.0.1:1", "llama3.2")}

	if got := h.Think(context.Background(), "hi", ""); got != FallbackUnavailable {
		t.Errorf("expected fallback message, got %q", got)
	}
}

func TestHybridNoBackends(t *testing.T) {
	h := &Hybrid{}
	if got := h.Think(context.Background(), "hi", ""); got != FallbackNoBackend {
		t.Errorf("expected no-backend message, got %q", got)
	}
}

func TestHybridFallsBackToRemote(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"remote wins"}}]}`))
	}))
	defer remote.Close()

	h := &Hybrid{
		Local:  NewOllama("http://127.0.0.1:1", "llama3.2"),
		Remote: NewOpenAI(remote.URL, "k", ""),
	}
	if got := h.Think(context.Background(), "hi", ""); got != "remote wins" {
		t.Errorf("expected remote reply, got %q", got)
	}
}
