package aicategory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client asks an AI service to pick a category for a receipt item.
type Client interface {
	Categorize(ctx context.Context, item string, categories []string) (string, error)
}

// GeminiClient implements Client with the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini client for model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: client.GenerativeModel(model)}, nil
}

// Categorize sends a one-shot prompt and parses the "Category:" line of the answer.
func (c *GeminiClient) Categorize(ctx context.Context, item string, categories []string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(item, categories)))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return ExtractCategory(text.String()), nil
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func buildPrompt(item string, categories []string) string {
	return fmt.Sprintf(`Categorize the following item from a shopping receipt:
Item: %s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`, item, strings.Join(categories, ", "))
}

// ExtractCategory returns the value of the first "Category:" line of an
// AI response, or "" when there is none.
func ExtractCategory(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if len(line) >= len("category:") && strings.EqualFold(line[:len("category:")], "category:") {
			return strings.Trim(strings.TrimSpace(line[len("category:"):]), "[]*\"'.")
		}
	}
	return ""
}
