// Package ai is the optional enrichment adapter: it asks Gemini to rewrite
// summary text and experience bullet points against a target job
// description. It never mutates the document; callers decide whether and how
// to merge what comes back.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resume-builder/internal/model"
)

// ErrNotConfigured is returned when no API credential is present. Detected
// at call time, not at load time: the rest of the application keeps working.
var ErrNotConfigured = errors.New("AI enrichment is not configured: set GEMINI_API_KEY")

// ErrProvider wraps any transport or parsing failure from the provider.
var ErrProvider = errors.New("AI provider request failed")

const defaultModel = "gemini-2.5-flash"

type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini-backed client. An empty apiKey yields
// ErrNotConfigured.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = defaultModel
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return &Client{client: gc, model: model}, nil
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// GenerateSummary returns suggested summary prose for the document, tailored
// to the job description. The result is plain prose with no surrounding
// quotes or preamble.
func (c *Client) GenerateSummary(ctx context.Context, doc model.Document, jobDescription string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)

	resp, err := m.GenerateContent(ctx, genai.Text(summaryPrompt(doc, jobDescription)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	text, err := extractText(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return stripProse(text), nil
}

// GenerateBulletPoints returns 3-5 suggested bullet points for one
// experience entry. When the provider responds with non-array or otherwise
// unparseable content, it returns an empty list rather than an error.
func (c *Client) GenerateBulletPoints(ctx context.Context, entry model.Experience, jobDescription string) ([]string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.ResponseMIMEType = "application/json"

	resp, err := m.GenerateContent(ctx, genai.Text(bulletsPrompt(entry, jobDescription)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	text, err := extractText(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return parseBullets(text), nil
}

// extractText collects the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// stripProse removes code fences, surrounding quotes and stray whitespace
// from a prose reply.
func stripProse(text string) string {
	text = cleanJSONBlock(text)
	text = strings.Trim(text, "\"'")
	return strings.TrimSpace(text)
}

// cleanJSONBlock removes markdown code block wrappers.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// maxBullets bounds how many suggestions one entry may receive; anything the
// provider returns past it is discarded.
const maxBullets = 5

// parseBullets decodes a JSON string array, tolerating wrappers and junk
// around it. Unusable content yields an empty, non-nil list; overlong lists
// are truncated to maxBullets.
func parseBullets(text string) []string {
	text = cleanJSONBlock(text)

	var bullets []string
	if err := json.Unmarshal([]byte(text), &bullets); err != nil {
		// try to pull an array out of surrounding commentary
		start := strings.Index(text, "[")
		end := strings.LastIndex(text, "]")
		if start >= 0 && end > start {
			if err2 := json.Unmarshal([]byte(text[start:end+1]), &bullets); err2 != nil {
				return []string{}
			}
		} else {
			return []string{}
		}
	}

	out := []string{}
	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b != "" {
			out = append(out, b)
		}
		if len(out) == maxBullets {
			break
		}
	}
	return out
}
