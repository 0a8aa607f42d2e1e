// Package llm wraps the Anthropic API behind a single-prompt completion call.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/okravets/caltrack-backend/internal/config"
)

// Client sends prompts to Claude and returns the text of the first block.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// New creates a client from the advisor configuration.
func New(cfg config.AdvisorConfig) *Client {
	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

// Complete sends one user prompt and returns the model's text response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty llm response")
	}

	return strings.TrimSpace(msg.Content[0].Text), nil
}
