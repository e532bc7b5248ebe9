package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/bz888/govhelper/internal/api/server/client"
	"github.com/bz888/govhelper/internal/api/server/web"
	"github.com/bz888/govhelper/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	Application = "Government Helper"
	Version     = "3.0.0"
)

type Handler struct {
	geminiClient client.GeminiClientInterface
	responder    *Responder
	page         *template.Template
	logger       *logger.Logger
}

func NewHandler(geminiClient client.GeminiClientInterface, responder *Responder, page *template.Template) *Handler {
	return &Handler{
		geminiClient: geminiClient,
		responder:    responder,
		page:         page,
		logger:       logger.NewLogger("handler"),
	}
}

// HomeHandler renders the chat page. A render failure is reported as plain
// text so the browser shows it directly.
func (h *Handler) HomeHandler(c *gin.Context) {
	status := h.geminiClient.Status()

	var buf bytes.Buffer
	err := h.page.Execute(&buf, web.PageData{Available: status.Available, Model: status.Model})
	if err != nil {
		h.logger.Error("Error serving home page:", err)
		c.String(http.StatusInternalServerError, "Error loading application: %v", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) HealthHandler(c *gin.Context) {
	status := h.geminiClient.Status()
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"timestamp":    status,
		"ai_available": status.Available,
		"model":        status.Model,
		"version":      Version,
	})
}

func (h *Handler) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"application": Application,
		"version":     Version,
		"ai_client":   h.geminiClient.Status(),
		"endpoints": gin.H{
			"chat":   "/chat",
			"health": "/health",
			"status": "/status",
		},
	})
}

func errorBody(message string) gin.H {
	return gin.H{
		"error":  message,
		"status": string(StatusError),
	}
}
