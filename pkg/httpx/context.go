package httpx

import (
	"context"

	"github.com/kmrmotors/motodrive/pkg/jwtx"
)

type ctxKey string

const (
	// CtxKeyPrincipal holds the verified identity-provider claims.
	CtxKeyPrincipal ctxKey = "principal"
	// CtxKeySubject holds the external principal id, for rate limiting.
	CtxKeySubject ctxKey = "subject"
)

// PrincipalFromContext returns the verified claims attached by the authn
// middleware, or nil for anonymous requests.
func PrincipalFromContext(ctx context.Context) *jwtx.Claims {
	if c, ok := ctx.Value(CtxKeyPrincipal).(*jwtx.Claims); ok {
		return c
	}
	return nil
}

func subjectFromCtx(ctx context.Context) string {
	if s, ok := ctx.Value(CtxKeySubject).(string); ok {
		return s
	}
	return ""
}
