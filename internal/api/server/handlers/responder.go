package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/bz888/govhelper/internal/api/server/client"
	"github.com/bz888/govhelper/internal/logger"
	"github.com/bz888/govhelper/internal/prompt"
)

type Source string

const (
	SourceGemini          Source = "gemini_ai"
	SourceValidationError Source = "validation_error"
	SourceUnavailable     Source = "ai_unavailable"
	SourceEmptyResponse   Source = "empty_response"
	SourceServerError     Source = "server_error"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// ChatResult is the /chat success envelope.
type ChatResult struct {
	Response string `json:"response"`
	Source   Source `json:"source"`
	Status   Status `json:"status"`
}

const previewLength = 50

// Responder turns a user question into a ChatResult. Every failure of the
// AI call ends up as a fallback result, never as an error.
type Responder struct {
	geminiClient client.GeminiClientInterface
	timeout      time.Duration
	logger       *logger.Logger
}

func NewResponder(geminiClient client.GeminiClientInterface, timeout time.Duration) *Responder {
	return &Responder{
		geminiClient: geminiClient,
		timeout:      timeout,
		logger:       logger.NewLogger("responder"),
	}
}

func (r *Responder) GetResponse(ctx context.Context, message string) ChatResult {
	r.logger.Info("Processing user question:", preview(message))

	if strings.TrimSpace(message) == "" {
		return ChatResult{Response: msgEmptyQuestion, Source: SourceValidationError, Status: StatusError}
	}

	if !r.geminiClient.IsAvailable() {
		r.logger.Warn("AI client unavailable, returning manual lookup fallback")
		return unavailableResult()
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	result := r.geminiClient.Generate(ctx, prompt.Build(message))

	switch result.Failure {
	case client.FailureNone:
		r.logger.Info("Gemini AI response generated successfully")
		return ChatResult{Response: result.Text, Source: SourceGemini, Status: StatusSuccess}
	case client.FailureRequest:
		r.logger.Error("Error in response generation:", result.Err)
		return ChatResult{Response: fallbackServerBusy, Source: SourceServerError, Status: StatusError}
	case client.FailureEmptyResponse, client.FailureEmptyPrompt:
		r.logger.Warn("Gemini returned empty response")
		return ChatResult{Response: fallbackEmpty, Source: SourceEmptyResponse, Status: StatusWarning}
	case client.FailureUnavailable:
		r.logger.Warn("AI client became unavailable during request")
		return unavailableResult()
	default:
		r.logger.Error("Unknown generation outcome:", result.Failure)
		return ChatResult{Response: fallbackServerBusy, Source: SourceServerError, Status: StatusError}
	}
}

func unavailableResult() ChatResult {
	return ChatResult{Response: fallbackUnavailable, Source: SourceUnavailable, Status: StatusError}
}

func preview(message string) string {
	runes := []rune(message)
	if len(runes) <= previewLength {
		return message
	}
	return string(runes[:previewLength]) + "..."
}
