package drafting

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// GenAICompleter calls Gemini through the Google GenAI SDK.
type GenAICompleter struct {
	client *genai.Client
	model  string
}

// NewGenAICompleter returns nil and no error when apiKey is empty, which
// leaves the Service unconfigured.
func NewGenAICompleter(ctx context.Context, apiKey, model string) (*GenAICompleter, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAICompleter{client: client, model: model}, nil
}

func (c *GenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("GenAI returned no text")
	}
	return text, nil
}

// NewGenAIService builds a Service backed by Gemini. Without an API key, or
// if the client cannot be created, the Service is left unconfigured and
// answers every draft with NotConfiguredText.
func NewGenAIService(ctx context.Context, apiKey, model string, logger *zap.Logger) *Service {
	if apiKey == "" {
		logger.Warn("API_KEY not set; AI drafting disabled")
		return NewService(nil, logger)
	}

	completer, err := NewGenAICompleter(ctx, apiKey, model)
	if err != nil {
		logger.Warn("AI drafting disabled", zap.Error(err))
		return NewService(nil, logger)
	}
	return NewService(completer, logger)
}
