// Package chat implements the assistant endpoint: a thin proxy to the
// Gemini API with a deterministic canned fallback when the provider is
// unconfigured or misbehaves.
package chat

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// emptyReplyNotice is returned when the provider call succeeds but yields
// only whitespace.
const emptyReplyNotice = "I received an empty response. Please try rephrasing your question or ask something else."

// promptTemplate frames every user message before it reaches the model.
const promptTemplate = `You are an AI assistant for an Alumni Portal for Esprit University.
You help with alumni information, data analysis, and portal features.
The user's message is: %s

Provide a helpful, professional response. Keep responses concise but informative.
Focus on alumni data, Esprit university information, and portal functionality.`

// Gemini wraps the generative model client used by the chat proxy.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini client.  An empty API key is not an error:
// the caller gets nil and should serve canned replies instead.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = "gemini-1.5-pro"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate sends one message to the model and returns the trimmed reply.
// A blank reply from a successful call maps to emptyReplyNotice.  Errors
// are returned as-is; the service layer decides what the caller sees.
func (g *Gemini) Generate(ctx context.Context, message string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(promptTemplate, message), genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return emptyReplyNotice, nil
	}
	return text, nil
}
