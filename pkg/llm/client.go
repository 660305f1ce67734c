// Package llm submits prompts to an OpenAI-compatible chat-completions API
// and parses the model's structured reply. One request per run, no retry:
// rate limiting and every other failure surface to the caller classified
// via apierror.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hellenic-development/figma-suggest/pkg/apierror"
)

const defaultBaseURL = "https://api.openai.com/v1"

// maxResponseSize limits how much of the completion response body is read.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`    // "system", "user", or "assistant"
	Content string `json:"content"`
}

// Client calls a chat-completions endpoint with fixed model parameters.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithBaseURL overrides the API base URL, e.g. for OpenAI-compatible servers.
func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		client.baseURL = baseURL
	}
}

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(client *Client) {
		client.model = model
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(client *Client) {
		client.temperature = t
	}
}

// WithMaxTokens limits the completion length.
func WithMaxTokens(n int) Option {
	return func(client *Client) {
		client.maxTokens = n
	}
}

// NewClient creates a completion client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		model:       "gpt-4",
		temperature: 0.2,
		maxTokens:   512,
		httpClient: &http.Client{
			Timeout: 180 * time.Second, // allow time for slow completions
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []Message `json:"messages"`
	N           int       `json:"n"`
}

// chatResponse is the chat-completions response body.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete sends one chat-completion request and returns the raw text of the
// first choice. The full response is awaited; there is no streaming.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("at least one message is required")
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages:    messages,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("build request body: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierror.New(apierror.KindNetworkOrServer, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", apierror.New(apierror.KindNetworkOrServer, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", apierror.FromStatusCode(resp.StatusCode, respBody)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", apierror.New(apierror.KindMalformedOutput, fmt.Errorf("parse completion response: %w", err))
	}

	if len(chatResp.Choices) == 0 {
		return "", apierror.Newf(apierror.KindMalformedOutput, "no choices in completion response")
	}

	return chatResp.Choices[0].Message.Content, nil
}
