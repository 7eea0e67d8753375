package rewrite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/resumeiq/resumeiq/internal/pkg/env"
)

const (
	defaultAPIBaseURL = "https://api.openai.com/v1"
	defaultModel      = "gpt-4o-mini"

	systemPrompt = "You rewrite resume text to be concise, action-oriented and professional. " +
		"Return only the rewritten text, no commentary."
)

// Client wraps a chat-completions endpoint as an opaque capability: prompt in,
// rewritten text out. The engine returns the result verbatim.
type Client struct {
	APIKey     string
	APIBaseURL string
	Model      string

	HTTPClient *http.Client
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewClientFromEnv() *Client {
	return &Client{
		APIKey:     strings.TrimSpace(env.GetEnv("AI_API_KEY", "")),
		APIBaseURL: strings.TrimRight(env.GetEnv("AI_API_BASE_URL", defaultAPIBaseURL), "/"),
		Model:      strings.TrimSpace(env.GetEnv("AI_MODEL", defaultModel)),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Rewrite sends the text to the completion model and returns its output.
func (c *Client) Rewrite(ctx context.Context, text string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("AI_API_KEY is not configured")
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("text is required")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion call failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
