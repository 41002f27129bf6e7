package jwtx

import (
	"crypto"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"
)

// jwk is the subset of RFC 7517 we need for RSA verification keys.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// RemoteJWKS fetches the identity provider's JWKS document and caches the
// parsed keys. An unknown kid triggers a refresh (bounded by a minimum
// interval) so provider key rotation is picked up without a restart.
type RemoteJWKS struct {
	URL        string
	HTTPClient *http.Client
	RefreshTTL time.Duration

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewRemoteJWKS creates a key source backed by the given JWKS endpoint.
func NewRemoteJWKS(url string) *RemoteJWKS {
	return &RemoteJWKS{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		RefreshTTL: 5 * time.Minute,
	}
}

// Get returns the RSA public key for kid, refreshing the cached document
// if the kid is unknown and the cache is stale.
func (s *RemoteJWKS) Get(kid string) (crypto.PublicKey, error) {
	s.mu.RLock()
	key, ok := s.keys[kid]
	stale := time.Since(s.fetchedAt) >= s.RefreshTTL
	s.mu.RUnlock()

	if ok {
		return key, nil
	}
	if !stale {
		return nil, ErrUnknownKID
	}

	if err := s.Refresh(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if key, ok := s.keys[kid]; ok {
		return key, nil
	}
	return nil, ErrUnknownKID
}

// IsReady reports whether at least one key has been loaded.
func (s *RemoteJWKS) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys) > 0
}

// Refresh fetches and replaces the cached key set.
func (s *RemoteJWKS) Refresh() error {
	resp, err := s.HTTPClient.Get(s.URL)
	if err != nil {
		return fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("jwtx: decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			return err
		}
		keys[k.Kid] = pub
	}

	s.mu.Lock()
	s.keys = keys
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return nil
}

func parseRSAKey(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("jwtx: jwk %q: bad modulus: %w", k.Kid, err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("jwtx: jwk %q: bad exponent: %w", k.Kid, err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}

// StaticKeySet is a fixed in-memory key source, used in tests and for
// pinned provider keys.
type StaticKeySet struct {
	mu   sync.RWMutex
	keys map[string]crypto.PublicKey
}

// NewStaticKeySet creates an empty static key set.
func NewStaticKeySet() *StaticKeySet {
	return &StaticKeySet{keys: make(map[string]crypto.PublicKey)}
}

// Add registers a public key under kid.
func (s *StaticKeySet) Add(kid string, key crypto.PublicKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[kid] = key
}

func (s *StaticKeySet) Get(kid string) (crypto.PublicKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if key, ok := s.keys[kid]; ok {
		return key, nil
	}
	return nil, ErrUnknownKID
}

func (s *StaticKeySet) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys) > 0
}
