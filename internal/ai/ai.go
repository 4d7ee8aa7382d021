package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIService wraps the Gemini client behind the promo copy assistant used by
// the admin news-feed screen.
type AIService struct {
	Client *genai.Client
}

// NewAIService initializes the Gemini client.
func NewAIService(apiKey string) (*AIService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &AIService{Client: client}, nil
}

// SuggestPromoDescription drafts a one-line promotion blurb for an item.
// The news feed caps descriptions at 50 characters, so the prompt insists
// on that and the result is truncated as a backstop.
func (s *AIService) SuggestPromoDescription(ctx context.Context, itemName string, discount float64, modelName string) (string, error) {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	model := s.Client.GenerativeModel(modelName)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(`
			You write promotional blurbs for a supermarket news feed.
			Reply with ONE plain sentence, no quotes, no emoji,
			at most 50 characters.
		`)},
	}

	prompt := fmt.Sprintf("Item: %s. Discount: %.1f%% off.", itemName, discount)
	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error generating promo description: %w", err)
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	text := strings.TrimSpace(fmt.Sprintf("%v", res.Candidates[0].Content.Parts[0]))
	if len(text) > 50 {
		text = text[:50]
	}
	return text, nil
}
