package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/bz888/govhelper/internal/config"
	"github.com/bz888/govhelper/internal/logger"
	"google.golang.org/genai"
)

// generator is the part of *genai.Models the client needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient represents a client for the Gemini API. A client whose
// models handle is nil is unavailable and answers every call with
// FailureUnavailable.
type GeminiClient struct {
	models     generator
	model      string
	apiKeySet  bool
	generation GenerationConfig
	logger     *logger.Logger
}

// NewGeminiClient configures the SDK from settings. It never fails: invalid
// settings or SDK errors are logged and leave the client unavailable.
func NewGeminiClient(ctx context.Context, settings *config.Settings) *GeminiClient {
	c := newGeminiClient(nil, settings)

	if err := settings.Validate(); err != nil {
		c.logger.Error("Failed to initialize Gemini client:", err)
		return c
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		c.logger.Error("Failed to initialize Gemini client:", err)
		return c
	}

	c.models = sdk.Models
	c.logger.Info("Successfully initialized Gemini client:", c.model)
	return c
}

func newGeminiClient(models generator, settings *config.Settings) *GeminiClient {
	return &GeminiClient{
		models:    models,
		model:     settings.Model,
		apiKeySet: settings.APIKeySet(),
		generation: GenerationConfig{
			Temperature:     float32(settings.Generation.Temperature),
			TopP:            float32(settings.Generation.TopP),
			TopK:            float32(settings.Generation.TopK),
			MaxOutputTokens: int32(settings.Generation.MaxOutputTokens),
		},
		logger: logger.NewLogger("gemini client"),
	}
}

func (c *GeminiClient) IsAvailable() bool {
	return c.models != nil
}

// Generate sends prompt in a single GenerateContent call. Errors are logged
// and folded into the Result.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) Result {
	if !c.IsAvailable() {
		c.logger.Error("Gemini model not available")
		return failure(FailureUnavailable, nil)
	}

	if strings.TrimSpace(prompt) == "" {
		c.logger.Error("Empty prompt provided")
		return failure(FailureEmptyPrompt, nil)
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), c.contentConfig())
	if err != nil {
		c.logger.Error("Error generating response:", err)
		return failure(FailureRequest, fmt.Errorf("generate content: %w", err))
	}

	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text())
	}
	if text == "" {
		c.logger.Warn("Gemini returned empty response")
		return failure(FailureEmptyResponse, nil)
	}

	c.logger.Info("Gemini response generated successfully")
	return success(text)
}

func (c *GeminiClient) contentConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.generation.Temperature),
		TopP:            genai.Ptr(c.generation.TopP),
		TopK:            genai.Ptr(c.generation.TopK),
		MaxOutputTokens: c.generation.MaxOutputTokens,
	}
}

func (c *GeminiClient) Status() Status {
	return Status{
		Available: c.IsAvailable(),
		Model:     c.model,
		Type:      modelType(c.model),
		APIKeySet: c.apiKeySet,
	}
}
