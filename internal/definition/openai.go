// Package definition provides OpenAI implementation of the Provider interface.
package definition

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/puzzlewire/wordled/internal/config"
)

// OpenAIClient generates glosses with the OpenAI API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI definition client.
func NewOpenAIClient(cfg config.DefinitionConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}, nil
}

// Name returns the provider name.
func (c *OpenAIClient) Name() string {
	return "openai"
}

const glossSystemPrompt = `You write concise dictionary definitions. ` +
	`Given a single English word, respond with one sentence defining it. ` +
	`No preamble, no quotation marks, no restating the word.`

// Define generates a one-sentence gloss for the word.
func (c *OpenAIClient) Define(ctx context.Context, word string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: glossSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: strings.ToLower(word)},
		},
		MaxTokens:   60,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
