package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/kmrmotors/motodrive/pkg/jwtx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

// AuthnMiddleware requires a valid identity-provider bearer token and
// attaches the verified principal to the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token verification failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithPrincipal(ctx, claims)))
		})
	}
}

// OptionalAuthn attaches the principal when a valid bearer token is present
// but never rejects the request. Listing endpoints use it to enrich
// responses for signed-in callers.
func OptionalAuthn(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if raw, ok := bearerToken(r); ok {
				if claims, err := v.Verify(raw); err == nil {
					ctx = contextWithPrincipal(ctx, claims)
				} else {
					slogx.FromContext(ctx).Debug("ignoring invalid bearer token", "err", err)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer")), true
}

func contextWithPrincipal(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyPrincipal, &c)
	ctx = context.WithValue(ctx, CtxKeySubject, c.Subject)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   desc,
	})
}
