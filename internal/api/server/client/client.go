package client

import (
	"context"
	"strings"
)

// FailureKind tells the caller why Generate produced no text.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureUnavailable
	FailureEmptyPrompt
	FailureEmptyResponse
	FailureRequest
)

func (f FailureKind) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureUnavailable:
		return "unavailable"
	case FailureEmptyPrompt:
		return "empty_prompt"
	case FailureEmptyResponse:
		return "empty_response"
	case FailureRequest:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Generate call. Text is set only when Failure
// is FailureNone; Err carries the SDK error for FailureRequest.
type Result struct {
	Text    string
	Failure FailureKind
	Err     error
}

func (r Result) OK() bool {
	return r.Failure == FailureNone
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(kind FailureKind, err error) Result {
	return Result{Failure: kind, Err: err}
}

// Status is a read-only snapshot of the client, served by /health and /status.
type Status struct {
	Available bool   `json:"available"`
	Model     string `json:"model"`
	Type      string `json:"type"`
	APIKeySet bool   `json:"api_key_set"`
}

// GenerationConfig mirrors the sampling parameters in config.Generation.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

type GeminiClientInterface interface {
	IsAvailable() bool
	Generate(ctx context.Context, prompt string) Result
	Status() Status
}

// modelType turns "gemini-1.5-flash" into "gemini_1_5_flash".
func modelType(model string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(model)
}
