package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

func TestBootstrap(t *testing.T) {
	t.Parallel()

	t.Run("disabled without a configured token", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st}
		_, err := svc.Bootstrap(context.Background(), "anything", "admin@example.com")
		require.ErrorIs(t, err, ErrBootstrapDisabled)
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "secret"}
		_, err := svc.Bootstrap(context.Background(), "guess", "admin@example.com")
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("creates an unlinked admin record", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "secret"}

		admin, err := svc.Bootstrap(context.Background(), "secret", "Admin@Example.com")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, admin.Role)
		require.Equal(t, "admin@example.com", admin.Email)
		require.Empty(t, admin.ExternalID)
	})

	t.Run("elevates an existing user", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "secret"}

		existing := seedUser(t, st, "resident@example.com", domain.RoleUser)

		admin, err := svc.Bootstrap(context.Background(), "secret", "resident@example.com")
		require.NoError(t, err)
		require.Equal(t, existing.ID, admin.ID)
		require.Equal(t, domain.RoleAdmin, admin.Role)
	})

	t.Run("runs at most once", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "secret"}

		_, err := svc.Bootstrap(context.Background(), "secret", "first@example.com")
		require.NoError(t, err)

		_, err = svc.Bootstrap(context.Background(), "secret", "second@example.com")
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "secret"}
		_, err := svc.Bootstrap(context.Background(), "secret", "not-an-email")
		require.ErrorIs(t, err, ErrBootstrapInvalidEmail)
	})
}
