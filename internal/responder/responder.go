// Package responder provides a pluggable interface for chat-completion
// backends. The state core never depends on a responder being reachable;
// callers degrade to fixed fallback text when none answers.
package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Responder produces a reply to a prompt.
type Responder interface {
	Chat(ctx context.Context, prompt, system string) (string, error)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func buildMessages(prompt, system string) []message {
	var msgs []message
	if system != "" {
		msgs = append(msgs, message{Role: "system", Content: system})
	}
	return append(msgs, message{Role: "user", Content: prompt})
}

// --- Ollama Provider ---

// Ollama talks to a local Ollama instance.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
	probe   *http.Client
}

// NewOllama creates a local responder. Host defaults to $OLLAMA_HOST or
// localhost:11434.
func NewOllama(baseURL, model string) *Ollama {
	if baseURL == "" {
		baseURL = os.Getenv("OLLAMA_HOST")
	}
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &Ollama{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		probe:   &http.Client{Timeout: 2 * time.Second},
	}
}

// Available reports whether the Ollama API answers at all. Kept cheap so
// it can run before every request.
func (o *Ollama) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", o.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := o.probe.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaChatResponse struct {
	Message message `json:"message"`
}

// Chat sends the prompt to the local model.
func (o *Ollama) Chat(ctx context.Context, prompt, system string) (string, error) {
	body, _ := json.Marshal(ollamaChatRequest{
		Model:    o.model,
		Messages: buildMessages(prompt, system),
	})
	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama error %d: %s", resp.StatusCode, string(b))
	}

	var result ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Message.Content, nil
}

// --- OpenAI-compatible Provider ---

// OpenAI talks to any OpenAI-compatible chat completion API.
type OpenAI struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenAI creates a remote responder.
func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &OpenAI{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type openaiChatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type openaiChatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Chat sends the prompt to the remote model.
func (o *OpenAI) Chat(ctx context.Context, prompt, system string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("api key not configured")
	}

	body, _ := json.Marshal(openaiChatRequest{
		Model:    o.model,
		Messages: buildMessages(prompt, system),
	})
	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai error %d: %s", resp.StatusCode, string(b))
	}

	var result openaiChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return result.Choices[0].Message.Content, nil
}

// --- Hybrid ---

// Fallback replies used when no backend can answer. Operations that
// consult a responder return these instead of failing.
const (
	FallbackNoBackend   = "没有可用的LLM后端"
	FallbackUnavailable = "我正在思考... (本地LLM未启动)"
)

// Hybrid prefers the local backend and falls back to the remote one.
type Hybrid struct {
	Local  *Ollama
	Remote *OpenAI
}

// Think answers via the first reachable backend. It never returns an
// error; unreachable or failing backends yield a fallback message.
func (h *Hybrid) Think(ctx context.Context, prompt, system string) string {
	if h.Local != nil && h.Local.Available(ctx) {
		reply, err := h.Local.Chat(ctx, prompt, system)
		if err == nil {
			return reply
		}
	}
	if h.Remote != nil {
		reply, err := h.Remote.Chat(ctx, prompt, system)
		if err == nil {
			return reply
		}
	}
	if h.Local != nil {
		return FallbackUnavailable
	}
	return FallbackNoBackend
}

// Chat implements Responder.
func (h *Hybrid) Chat(ctx context.Context, prompt, system string) (string, error) {
	return h.Think(ctx, prompt, system), nil
}

// NewFromEnv builds a hybrid responder from environment variables:
// OLLAMA_HOST, MINDFORGE_LLM_MODEL, OPENAI_API_KEY, OPENAI_BASE_URL.
func NewFromEnv() *Hybrid {
	h := &Hybrid{
		Local: NewOllama(os.Getenv("OLLAMA_HOST"), os.Getenv("MINDFORGE_LLM_MODEL")),
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		h.Remote = NewOpenAI(os.Getenv("OPENAI_BASE_URL"), key, os.Getenv("MINDFORGE_REMOTE_MODEL"))
	}
	return h
}
