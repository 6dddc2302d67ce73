package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// defaultOpenRouterBaseURL is the default OpenRouter API base URL.
const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// HTTPDoer abstracts HTTP clients used by providers.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is a non-2xx provider response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("openrouter error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("openrouter error: status %d: %s", e.StatusCode, e.Body)
}

// OpenRouterProvider implements Provider for OpenAI-compatible chat endpoints.
type OpenRouterProvider struct {
	APIKey  string
	BaseURL string
	Client  HTTPDoer
	Model   string
}

// NewOpenRouterProvider constructs an OpenRouter provider with explicit settings.
func NewOpenRouterProvider(model, apiKey, baseURL string, client HTTPDoer) (*OpenRouterProvider, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenRouterProvider{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Model:   model,
	}, nil
}

// Stream sends a prompt to the chat completions endpoint and returns its events.
func (p *OpenRouterProvider) Stream(ctx context.Context, prompt Prompt) (Stream, error) {
	req, err := p.newRequest(ctx, prompt)
	if err != nil {
		return nil, err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	events, err := parseOpenRouterStream(resp.Body)
	if err != nil {
		return nil, err
	}
	return &staticStream{events: events}, nil
}

// newRequest encodes prompt as a streaming chat completions POST.
func (p *OpenRouterProvider) newRequest(ctx context.Context, prompt Prompt) (*http.Request, error) {
	body := openRouterRequest{
		Model:       p.Model,
		Stream:      true,
		Messages:    buildOpenRouterMessages(prompt),
		Temperature: prompt.Temperature,
	}
	if len(body.Messages) == 0 {
		return nil, fmt.Errorf("prompt has no messages")
	}
	if prompt.JSONMode {
		body.ResponseFormat = &openRouterResponseFormat{Type: "json_object"}
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/chat/completions", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header = http.Header{
		"Authorization": {"Bearer " + p.APIKey},
		"Content-Type":  {"application/json"},
		"Accept":        {"text/event-stream"},
	}
	return req, nil
}
