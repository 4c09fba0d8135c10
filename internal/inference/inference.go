// Package inference derives profile data from the shape of an email
// address. Both functions are pure string transforms; nothing here talks to
// the network or the database.
package inference

import (
	"regexp"
	"strings"
)

// socialPattern accepts any domain: the local part must be two letter-only
// runs separated by a single dot.
var socialPattern = regexp.MustCompile(`^([A-Za-z]+)\.([A-Za-z]+)@`)

// identityPattern is deliberately stricter than socialPattern: name
// inference only applies to institutional esprit.tn addresses.  The
// asymmetry matches observed production behavior and must stay.
var identityPattern = regexp.MustCompile(`(?i)^([A-Za-z]+)\.([A-Za-z]+)@esprit\.tn$`)

// Identity is a guessed display name split into its two parts.
type Identity struct {
	Name       string
	FamilyName string
}

// SocialLinks holds synthesized profile URLs.  Both fields are empty when
// the email did not match the expected shape.
type SocialLinks struct {
	Linkedin string
	Facebook string
}

// InferIdentity extracts capitalized first and family names from a
// firstname.lastname@esprit.tn address.  The boolean is false for any other
// domain or local-part shape.
func InferIdentity(email string) (Identity, bool) {
	m := identityPattern.FindStringSubmatch(strings.TrimSpace(email))
	if m == nil {
		return Identity{}, false
	}
	return Identity{
		Name:       capitalize(m[1]),
		FamilyName: capitalize(m[2]),
	}, true
}

// GuessSocialLinks synthesizes LinkedIn and Facebook profile URLs from a
// firstname.lastname@ local part, regardless of domain.  A non-matching
// email yields the zero value.
func GuessSocialLinks(email string) SocialLinks {
	m := socialPattern.FindStringSubmatch(strings.TrimSpace(email))
	if m == nil {
		return SocialLinks{}
	}
	first := strings.ToLower(m[1])
	last := strings.ToLower(m[2])
	return SocialLinks{
		Linkedin: "https://www.linkedin.com/in/" + first + "-" + last,
		Facebook: "https://www.facebook.com/" + first + "." + last,
	}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
