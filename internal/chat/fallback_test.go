package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackKeywordRules(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"joke", "tell me a joke", "Why don't skeletons fight each other? They don't have the guts."},
		{"greeting", "Hello there", "Hello! I'm the Alumni Portal AI assistant. How can I help you today?"},
		{"greeting short", "hi!", "Hello! I'm the Alumni Portal AI assistant. How can I help you today?"},
		{"alumni keyword", "how do I find ALUMNI?", "I can help you search for alumni information using their Esprit email addresses. Just enter an email like 'Ahmed.BenSalem@esprit.tn' in the search box!"},
		{"esprit keyword", "what is esprit", "Esprit is the university this alumni portal is designed for. All alumni emails follow the format: FirstName.LastName@esprit.tn"},
		{"no rule matches", "what's the weather", fallbackDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fallback(tt.message))
		})
	}
}

// A literal showcase email must win even though "esprit" appears in it and
// a generic rule would also match.
func TestFallbackLiteralEmailBeatsKeyword(t *testing.T) {
	got := Fallback("who is Ahmed.BenSalem@esprit.tn?")
	assert.Contains(t, got, "Ahmed BenSalem")
	assert.NotEqual(t, Fallback("esprit"), got)
}

func TestFallbackIsDeterministic(t *testing.T) {
	first := Fallback("tell me a joke about esprit alumni")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Fallback("tell me a joke about esprit alumni"))
	}
}

// Without a provider the service always serves the canned path.
func TestServiceReplyWithoutProvider(t *testing.T) {
	s := NewService(nil)
	got := s.Reply(context.Background(), "tell me a joke")
	assert.Equal(t, "Why don't skeletons fight each other? They don't have the guts.", got)
}
