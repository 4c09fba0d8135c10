package utils // package utils provides helper functions for session tokens and hashing

import (
	"errors" // sentinel errors for token validation failures
	"time"   // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed HS256 JWT bound to an admin account,
// together with its expiry.  The token travels in an HttpOnly cookie; the
// server keeps no session table, so possession of a valid token is the
// whole session state.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// ErrInvalidSession is returned by ParseSessionToken for any token that
// cannot be verified: bad signature, wrong algorithm, expired, or a
// malformed subject claim.  Callers only need the single failure mode.
var ErrInvalidSession = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT for an admin.  The JWT
// carries the standard subject (sub), expiration (exp) and issued at (iat)
// claims; the subject is the admin's numeric id.
func NewSessionToken(secret string, adminID uint64, ttlHours int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub": adminID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies a session JWT and returns the admin id from
// its subject claim.  The signing method is pinned to HMAC so a token
// signed with a different algorithm is rejected outright.
func ParseSessionToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidSession
	}
	// JWT numeric values decode as float64; tolerate both encodings the
	// way the login flow may have produced them.
	switch sub := claims["sub"].(type) {
	case float64:
		return uint64(sub), nil
	case uint64:
		return sub, nil
	}
	return 0, ErrInvalidSession
}
