package domain

import "time"

// AdminInvite is a single-use, self-expiring invitation that grants the
// admin role to the invited email on first sign-in. Only the SHA-256
// fingerprint of the opaque token is stored; the raw token lives in the
// share link handed to the admin who issued it.
type AdminInvite struct {
	ID        string
	Email     string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the invite can no longer validate at the given time.
func (i AdminInvite) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}
