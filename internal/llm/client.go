package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// modelCandidates are tried in order; a model that is not available on the
// account falls through to the next one.
var modelCandidates = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-2.5-pro",
	"gemini-2.0-flash-exp",
	"gemini-pro-latest",
}

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("llm client not configured")

// Client calls the Gemini API with a prompt and falls back across model
// candidates when one is not found.
type Client struct {
	apiKey string
	models []string
}

// NewClient creates a Gemini client. An empty key produces a client whose
// Ask always fails with ErrNotConfigured; callers check Configured first.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, models: modelCandidates}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Ask sends the prompt to Gemini and returns the answer text and the model
// that produced it. Model-not-found errors advance to the next candidate;
// any other error stops the loop.
func (c *Client) Ask(ctx context.Context, prompt string) (answer, model string, err error) {
	if !c.Configured() {
		return "", "", ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", "", fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	var lastErr error
	for _, name := range c.models {
		resp, err := client.Models.GenerateContent(ctx, name, contents, nil)
		if err != nil {
			lastErr = err
			if modelNotFound(err) {
				continue
			}
			break
		}
		text := resp.Text()
		if text == "" {
			lastErr = fmt.Errorf("model %s: empty response", name)
			continue
		}
		return text, name, nil
	}

	if lastErr == nil {
		lastErr = errors.New("unknown llm error")
	}
	return "", "", lastErr
}

func modelNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "404") ||
		strings.Contains(msg, "NOT_FOUND") ||
		strings.Contains(msg, "not found")
}
