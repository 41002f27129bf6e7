package http

import (
	"context"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/jwtx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// inviteTokenHeader carries an admin invite token during sign-in, redeemed
// while the local user record is resolved.
const inviteTokenHeader = "X-Invite-Token"

// userFromContext returns the resolved local user, or nil when resolution
// did not run (anonymous request through OptionalAuthn).
func userFromContext(ctx context.Context) *domain.User {
	if u, ok := ctx.Value(ctxKeyUser).(*domain.User); ok {
		return u
	}
	return nil
}

func principalFromClaims(c *jwtx.Claims) *domain.Principal {
	if c == nil {
		return nil
	}
	return &domain.Principal{
		ExternalID: c.Subject,
		Email:      c.Email,
		Name:       c.DisplayName(),
		ImageURL:   c.Picture,
		Phone:      c.PhoneNumber,
	}
}

// ResolveUser maps the verified principal to a local directory record and
// attaches it to the context. With required set, anonymous requests are
// rejected; otherwise they pass through without a user.
func ResolveUser(dir *service.DirectoryService, required bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p := principalFromClaims(httpx.PrincipalFromContext(ctx))
			if p == nil {
				if required {
					writeError(w, http.StatusUnauthorized, "authentication required")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			user, err := dir.Resolve(ctx, p, r.Header.Get(inviteTokenHeader))
			if err != nil {
				slogx.FromContext(ctx).Error("failed to resolve user", "err", err)
				writeError(w, http.StatusInternalServerError, "failed to resolve user")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxKeyUser, user)))
		})
	}
}

// RequireAdmin rejects callers whose resolved user lacks the admin role.
// Must run after ResolveUser.
func RequireAdmin() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userFromContext(r.Context())
			if user == nil {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !user.IsAdmin() {
				writeError(w, http.StatusForbidden, "admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
