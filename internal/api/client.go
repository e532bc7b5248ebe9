package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	serverClient "github.com/bz888/govhelper/internal/api/server/client"
	"github.com/bz888/govhelper/internal/api/server/handlers"
	"github.com/bz888/govhelper/internal/logger"
)

// Client talks to a running Government Helper server over HTTP.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *logger.Logger
}

type Health struct {
	Status      string              `json:"status"`
	Timestamp   serverClient.Status `json:"timestamp"`
	AIAvailable bool                `json:"ai_available"`
	Model       string              `json:"model"`
	Version     string              `json:"version"`
	Error       string              `json:"error,omitempty"`
}

// APIError is a non-200 reply from /chat.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q needs a scheme and host", baseURL)
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		logger: logger.NewLogger("api client"),
	}, nil
}

// Health fetches /health. An unhealthy reply is returned together with an
// error.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve("/health"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Failed to perform health request:", err)
		return nil, err
	}
	defer resp.Body.Close()

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || health.Status != "healthy" {
		return &health, fmt.Errorf("server unhealthy (%s): %s", resp.Status, health.Error)
	}
	return &health, nil
}

// Chat posts message to /chat. Request validation failures come back as
// *APIError.
func (c *Client) Chat(ctx context.Context, message string) (*handlers.ChatResult, error) {
	if message == "" {
		c.logger.Warn("No content parsed")
		return nil, errors.New("empty message")
	}

	requestData, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve("/chat"), bytes.NewReader(requestData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Failed to send request:", err)
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Failed to close response body:", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	var result handlers.ChatResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	return &result, nil
}

func (c *Client) resolve(path string) string {
	return c.base.ResolveReference(&url.URL{Path: path}).String()
}
