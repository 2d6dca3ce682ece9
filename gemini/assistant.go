// Package gemini answers documentation prompts with Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/docsite"
	"google.golang.org/genai"
)

// DefaultModel is used when Assistant.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// Ensure Assistant implements docsite.Assistant at compile time.
var _ docsite.Assistant = (*Assistant)(nil)

// Assistant implements docsite.Assistant using Google Gemini.
type Assistant struct {
	client *genai.Client

	// Model defaults to DefaultModel.
	Model string
}

// NewAssistant creates a new Assistant.
func NewAssistant(client *genai.Client) *Assistant {
	return &Assistant{client: client}
}

// Answer sends prompt, built by docsite.BuildAssistantPrompt, to Gemini.
func (a *Assistant) Answer(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", docsite.Errorf(docsite.EINVALID, "prompt required")
	}

	model := a.Model
	if model == "" {
		model = DefaultModel
	}

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docsite.Errorf(docsite.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant for developers integrating a wallet and authentication service. Answer based only on the documentation page provided. If the answer is not on the page, say so and point to the relevant API reference.",
			}},
		},
		Temperature: &temp,
	}
}
