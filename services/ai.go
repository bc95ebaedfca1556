package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrAIUnavailable is returned when no Gemini client is configured.
var ErrAIUnavailable = errors.New("gemini client not initialized")

// AIClient wraps the Gemini API. It is constructed once at startup and
// injected into the services that need text generation.
type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(ctx context.Context, apiKey, model string) (*AIClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &AIClient{client: client, model: model}, nil
}

// GenerateText sends a prompt and returns the first text part of the
// response. A nil receiver reports ErrAIUnavailable so callers can fall
// back to canned data.
func (a *AIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if a == nil || a.client == nil {
		return "", ErrAIUnavailable
	}

	model := a.client.GenerativeModel(a.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content returned")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return strings.TrimSpace(string(text)), nil
		}
	}

	return "", errors.New("no text part in response")
}

func (a *AIClient) Close() error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Close()
}

// cleanModelOutput strips the markdown fences Gemini likes to wrap JSON in.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
