package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferIdentity(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		want   Identity
		wantOK bool
	}{
		{"esprit address", "ahmed.bensalem@esprit.tn", Identity{"Ahmed", "Bensalem"}, true},
		{"mixed case", "AHMED.BenSalem@ESPRIT.TN", Identity{"Ahmed", "Bensalem"}, true},
		{"other domain", "ahmed.bensalem@gmail.com", Identity{}, false},
		{"no dot", "ahmed@esprit.tn", Identity{}, false},
		{"two dots", "a.b.c@esprit.tn", Identity{}, false},
		{"digits in name", "ahmed2.bensalem@esprit.tn", Identity{}, false},
		{"subdomain", "ahmed.bensalem@mail.esprit.tn", Identity{}, false},
		{"empty", "", Identity{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InferIdentity(tt.email)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuessSocialLinks(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  SocialLinks
	}{
		{
			"any domain matches",
			"Jane.Doe@example.org",
			SocialLinks{
				Linkedin: "https://www.linkedin.com/in/jane-doe",
				Facebook: "https://www.facebook.com/jane.doe",
			},
		},
		{
			"esprit address",
			"ahmed.bensalem@esprit.tn",
			SocialLinks{
				Linkedin: "https://www.linkedin.com/in/ahmed-bensalem",
				Facebook: "https://www.facebook.com/ahmed.bensalem",
			},
		},
		{"no dot separator", "janedoe@example.org", SocialLinks{}},
		{"digits in local part", "jane1.doe@example.org", SocialLinks{}},
		{"empty", "", SocialLinks{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessSocialLinks(tt.email))
		})
	}
}

// The two heuristics intentionally disagree on non-esprit domains: social
// links are guessed while the name is not.
func TestInferenceAsymmetry(t *testing.T) {
	email := "jane.doe@gmail.com"

	_, ok := InferIdentity(email)
	assert.False(t, ok)

	links := GuessSocialLinks(email)
	assert.NotEmpty(t, links.Linkedin)
	assert.NotEmpty(t, links.Facebook)
}
