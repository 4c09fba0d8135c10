package chat

import (
	"context"
	"log"
)

// Service answers chat messages.  With a configured provider it proxies the
// message through; otherwise, or on any provider failure, it falls back to
// the canned replies.  Provider errors never propagate to the caller.
type Service struct {
	gemini *Gemini // nil when no API key is configured
}

// NewService wraps an optional Gemini client.
func NewService(g *Gemini) *Service { return &Service{gemini: g} }

// Reply returns the assistant's answer for a non-empty message.  The
// provider gets exactly one attempt; a failure is logged and the canned
// path takes over immediately, with no retry.
func (s *Service) Reply(ctx context.Context, message string) string {
	if s.gemini != nil {
		text, err := s.gemini.Generate(ctx, message)
		if err == nil {
			return text
		}
		log.Printf("chat: provider call failed, using fallback: %v", err)
	}
	return Fallback(message)
}
