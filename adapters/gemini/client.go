// Package gemini wraps the Google generative AI client shared by the
// transcription and response adapters.
package gemini

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Generator is the narrow surface the adapters need from the generative
// backend. Tests substitute fakes.
type Generator interface {
	// GenerateContent submits parts (text, inline audio) as a single user
	// turn and returns the concatenated text of the first candidate.
	GenerateContent(ctx context.Context, parts []*genai.Part) (string, error)
}

// Client is the process-wide Gemini handle, constructed once at startup and
// treated as read-only afterwards.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

var _ Generator = (*Client)(nil)

// NewClient builds the Gemini client. The API key is required; there is
// deliberately no default credential.
func NewClient(ctx context.Context, logger *zap.Logger) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateContent implements Generator.
func (c *Client) GenerateContent(ctx context.Context, parts []*genai.Part) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	response, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var text string
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}
