// Package scriptgen calls the hosted text-generation API that turns a
// question prompt into a narration script.
package scriptgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the API answers successfully but with
// no usable content.
var ErrEmptyCompletion = errors.New("generation API returned no content")

// Client wraps an OpenAI-compatible chat-completion endpoint. The base URL is
// configurable so any compatible provider can serve generation.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a generation client. baseURL may be empty to use the
// provider default; the API key always comes from configuration, never from
// source.
func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: 90 * time.Second}

	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateScript submits the prompt and returns the generated script text.
// Transport failures, non-success responses and empty content all surface as
// errors; there is no retry and no fallback script.
func (c *Client) GenerateScript(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("script generation request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	script := strings.TrimSpace(resp.Choices[0].Message.Content)
	if script == "" {
		return "", ErrEmptyCompletion
	}
	return script, nil
}
