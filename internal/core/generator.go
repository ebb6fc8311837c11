package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriGen/internal/config"
)

// Generator turns a prompt into the complete generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var ErrEmptyResult = errors.New("response has no result")

// NewGenerator builds the provider selected by the active profile. It
// returns nil when the profile cannot issue requests.
func NewGenerator(cfg *config.Config) Generator {
	if !cfg.IsValid() {
		return nil
	}
	switch cfg.GetProvider() {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.GetAPIKey(), cfg.GetBackendURL(), cfg.GetModel())
	default:
		return NewHTTPGenerator(cfg.GetBackendURL(), cfg.GetTimeout())
	}
}

// HTTPGenerator talks to a backend exposing POST /generate.
type HTTPGenerator struct {
	baseURL string
	client  *http.Client
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Result *string `json:"result"`
}

func NewHTTPGenerator(baseURL string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "RoriGen/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("generate returned %s", resp.Status)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Result == nil {
		return "", ErrEmptyResult
	}

	return *out.Result, nil
}

// OpenAIGenerator sends the prompt as a single chat completion.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResult
	}
	return resp.Choices[0].Message.Content, nil
}
