package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

const defaultTemperature = 0.7

type geminiClient struct {
	client *genai.Client
}

// NewGeminiClient builds a Client backed by the Gemini API. Credentials are
// taken from the environment (GEMINI_API_KEY / GOOGLE_API_KEY).
func NewGeminiClient(ctx context.Context) (Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiClient{client: client}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req Request) string {
	log := config.WithContext(ctx)

	system := req.System
	if system == "" {
		system = SystemInstruction
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = req.MaxTokens
	}

	result, err := c.client.Models.GenerateContent(ctx, geminiModel, genai.Text(ComposePrompt(req)), cfg)
	if err != nil {
		log.WithError(err).Error("gemini generation failed")
		return fmt.Sprintf("Error generating content: %v", err)
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" {
		log.Warn("gemini returned an empty response")
		return "Error generating content: empty model response"
	}

	log.WithField("chars", len(raw)).Debug("gemini generation completed")
	return raw
}
