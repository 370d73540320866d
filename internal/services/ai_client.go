package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eduassist/eduassist-backend/internal/config"
	"github.com/eduassist/eduassist-backend/internal/logger"
)

// AIClient is the single outbound dependency of the generation
// pipeline: one synchronous chat completion per request, no retries.
type AIClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type aiClient struct {
	log         *logger.Logger
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

func NewAIClient(log *logger.Logger, cfg config.GatewayConfig) (AIClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway base URL is not set")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gateway API key is not set")
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	return &aiClient{
		log:         log.With("service", "AIClient"),
		httpClient:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete posts the prompt to the gateway and returns the first
// completion's text verbatim. Trimming and interpretation belong to
// the parser, not here.
func (c *aiClient) Complete(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", &GatewayError{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", &buf)
	if err != nil {
		return "", &GatewayError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("Gateway returned non-success status", "status", resp.StatusCode)
		return "", &GatewayError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", string(raw))}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &GatewayError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &GatewayError{Status: resp.StatusCode, Err: fmt.Errorf("gateway response has no choices")}
	}
	return parsed.Choices[0].Message.Content, nil
}
