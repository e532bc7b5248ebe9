package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const MaxMessageLength = 500

// ChatHandler validates the request shape and hands the question to the
// responder. AI-side failures still answer 200; only malformed requests get
// a 4xx.
func (h *Handler) ChatHandler(c *gin.Context) {
	if !isJSON(c.GetHeader("Content-Type")) {
		c.JSON(http.StatusBadRequest, errorBody(msgNotJSON))
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("Failed to read chat request body:", err)
		c.JSON(http.StatusBadRequest, errorBody(msgInvalidJSON))
		return
	}

	message, ok := decodeMessage(body)
	if !ok {
		c.JSON(http.StatusBadRequest, errorBody(msgInvalidJSON))
		return
	}

	message = strings.TrimSpace(message)
	if message == "" {
		c.JSON(http.StatusBadRequest, errorBody(msgEmptyQuestion))
		return
	}

	if utf8.RuneCountInString(message) > MaxMessageLength {
		c.JSON(http.StatusBadRequest, errorBody(msgTooLong))
		return
	}

	c.JSON(http.StatusOK, h.responder.GetResponse(c.Request.Context(), message))
}

// isJSON accepts application/json and any application/*+json media type.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

// decodeMessage returns the "message" field of a JSON object body. Bodies that
// are malformed, empty-valued (null, {}, [], "", 0, false) or not an object
// are rejected, as is a non-string message. A missing message reads as "".
func decodeMessage(body []byte) (string, bool) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", false
	}

	object, ok := data.(map[string]any)
	if !ok || len(object) == 0 {
		return "", false
	}

	raw, exists := object["message"]
	if !exists {
		return "", true
	}
	message, ok := raw.(string)
	return message, ok
}
