package jwtx

import (
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity-provider token claims we care about. The provider
// asserts who the caller is; everything else (roles, local user record) is
// resolved against our own directory.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the primary email address asserted by the provider.
	Email string `json:"email,omitempty"`

	// Name is the full display name, when the provider supplies one.
	Name string `json:"name,omitempty"`

	// GivenName / FamilyName are the split name parts. Some providers only
	// populate these, so callers should fall back to joining them.
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`

	// Picture is an avatar URL.
	Picture string `json:"picture,omitempty"`

	// PhoneNumber is optional and provider-dependent.
	PhoneNumber string `json:"phone_number,omitempty"`
}

// DisplayName returns the best-effort display name for the principal.
func (c *Claims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.GivenName + " " + c.FamilyName)
}

// ValidateIssuer checks the iss claim against the expected value.
// An empty expectation enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks that at least one expected audience is present.
// An empty expectation enforces nothing.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiry ensures the token is within its exp/nbf window, allowing
// the given leeway for clock skew.
func (c *Claims) ValidateExpiry(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
