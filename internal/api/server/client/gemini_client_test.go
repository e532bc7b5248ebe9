package client

import (
	"context"
	"errors"
	"testing"

	"github.com/bz888/govhelper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, cfg)
	resp, _ := args.Get(0).(*genai.GenerateContentResponse)
	return resp, args.Error(1)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func testSettings() *config.Settings {
	settings := config.Default()
	settings.APIKey = "test-key"
	return settings
}

func TestGenerateSuccessTrimsText(t *testing.T) {
	gen := new(MockGenerator)
	c := newGeminiClient(gen, testSettings())

	gen.On("GenerateContent", mock.Anything, config.DefaultModel, mock.Anything, mock.Anything).
		Return(textResponse("  Step 1...\n"), nil).Once()

	result := c.Generate(context.Background(), "prompt")

	require.True(t, result.OK())
	assert.Equal(t, "Step 1...", result.Text)
	gen.AssertExpectations(t)
}

func TestGenerateSendsPromptAndParameters(t *testing.T) {
	gen := new(MockGenerator)
	c := newGeminiClient(gen, testSettings())

	gen.On("GenerateContent", mock.Anything, config.DefaultModel,
		mock.MatchedBy(func(contents []*genai.Content) bool {
			return len(contents) == 1 && len(contents[0].Parts) == 1 && contents[0].Parts[0].Text == "hello"
		}),
		mock.MatchedBy(func(cfg *genai.GenerateContentConfig) bool {
			return *cfg.Temperature == float32(0.7) &&
				*cfg.TopP == float32(0.9) &&
				*cfg.TopK == float32(40) &&
				cfg.MaxOutputTokens == 1000
		}),
	).Return(textResponse("ok"), nil).Once()

	assert.True(t, c.Generate(context.Background(), "hello").OK())
	gen.AssertExpectations(t)
}

func TestGenerateRequestError(t *testing.T) {
	gen := new(MockGenerator)
	c := newGeminiClient(gen, testSettings())
	sdkErr := errors.New("quota exceeded")

	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sdkErr).Once()

	result := c.Generate(context.Background(), "prompt")

	assert.Equal(t, FailureRequest, result.Failure)
	assert.ErrorIs(t, result.Err, sdkErr)
	assert.Empty(t, result.Text)
	gen.AssertNumberOfCalls(t, "GenerateContent", 1)
}

func TestGenerateEmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"whitespace text", textResponse(" \n\t ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			c := newGeminiClient(gen, testSettings())
			gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tt.resp, nil).Once()

			result := c.Generate(context.Background(), "prompt")

			assert.Equal(t, FailureEmptyResponse, result.Failure)
			assert.NoError(t, result.Err)
		})
	}
}

func TestGenerateEmptyPromptSkipsCall(t *testing.T) {
	gen := new(MockGenerator)
	c := newGeminiClient(gen, testSettings())

	result := c.Generate(context.Background(), "   ")

	assert.Equal(t, FailureEmptyPrompt, result.Failure)
	gen.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnavailableClient(t *testing.T) {
	settings := config.Default()

	c := NewGeminiClient(context.Background(), settings)

	assert.False(t, c.IsAvailable())
	assert.Equal(t, FailureUnavailable, c.Generate(context.Background(), "prompt").Failure)
	assert.Equal(t, Status{
		Available: false,
		Model:     "gemini-1.5-flash",
		Type:      "gemini_1_5_flash",
		APIKeySet: false,
	}, c.Status())
}

func TestStatusAvailable(t *testing.T) {
	c := newGeminiClient(new(MockGenerator), testSettings())

	status := c.Status()

	assert.True(t, status.Available)
	assert.True(t, status.APIKeySet)
	assert.Equal(t, "gemini_1_5_flash", status.Type)
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "request_failed", FailureRequest.String())
	assert.Equal(t, "unknown", FailureKind(42).String())
}
