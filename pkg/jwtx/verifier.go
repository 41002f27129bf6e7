package jwtx

import (
	"crypto"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Keys resolves a key ID to a public key. Implemented by RemoteJWKS for
// production use and StaticKeySet for tests.
type Keys interface {
	// Get returns the public key for kid, or ErrUnknownKID.
	Get(kid string) (crypto.PublicKey, error)

	// IsReady reports whether at least one key is loaded.
	IsReady() bool
}

// Verifier validates a bearer token and returns its claims if legitimate.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// RS256Verifier validates JWTs signed with RS256, the algorithm hosted
// identity providers use for their session tokens.
type RS256Verifier struct {
	keys   Keys
	issuer string
	aud    []string
	leeway time.Duration
}

// NewVerifierRS256 creates a verifier over the given key source. Empty
// issuer/audience expectations are not enforced.
func NewVerifierRS256(keys Keys, issuer string, aud []string) *RS256Verifier {
	return &RS256Verifier{keys: keys, issuer: issuer, aud: aud, leeway: 30 * time.Second}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *RS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithLeeway(v.leeway),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		// The kid header tells us which provider key signed this token.
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("jwtx: missing kid")
		}

		pub, err := v.keys.Get(kid)
		if err != nil {
			return nil, fmt.Errorf("jwtx: kid %q: %w", kid, err)
		}

		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, errors.New("jwtx: key is not RSA")
		}
		return rsaPub, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("jwtx: invalid token claims")
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.aud); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.leeway); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
