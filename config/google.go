package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

var GeminiClient *genai.GenerativeModel

// InitGoogleServices initializes the Gemini client used to draft advisor
// brief narratives. The feature is optional: callers treat a missing key as
// "narrative drafting disabled", not a startup failure.
func InitGoogleServices() error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return fmt.Errorf("unable to create Gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	GeminiClient = client.GenerativeModel(model)
	slog.Info("Gemini API client initialized", "model", model)

	return nil
}
