package market_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

// TestBootstrapFlow covers the one-time designation of the initial admin.
func TestBootstrapFlow(t *testing.T) {
	baseURL, cleanup := setupMarketContainer(t)
	defer cleanup()

	client := marketsdk.NewClient(baseURL)
	ctx := context.Background()

	t.Run("rejects a wrong token", func(t *testing.T) {
		_, err := client.Bootstrap(ctx, marketsdk.BootstrapRequest{
			Token: "not-the-token",
			Email: adminEmail,
		})
		assertAPIStatus(t, err, http.StatusUnauthorized, "wrong bootstrap token")
	})

	t.Run("designates the first admin", func(t *testing.T) {
		resp, err := client.Bootstrap(ctx, marketsdk.BootstrapRequest{
			Token: bootstrapToken,
			Email: adminEmail,
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Equal(t, adminEmail, resp.User.Email)
		require.Equal(t, "ADMIN", resp.User.Role)
	})

	t.Run("runs at most once", func(t *testing.T) {
		_, err := client.Bootstrap(ctx, marketsdk.BootstrapRequest{
			Token: bootstrapToken,
			Email: "second@kmrmotors.test",
		})
		assertAPIStatus(t, err, http.StatusConflict, "second bootstrap")
	})

	t.Run("admin identity links on first sign-in", func(t *testing.T) {
		admin := client.WithToken(mintToken(t, "idp|admin", adminEmail, "Admin"))

		me, err := admin.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, adminEmail, me.User.Email)
		require.Equal(t, "ADMIN", me.User.Role)

		// Admin-only surface is reachable.
		dash, err := admin.Dashboard(ctx)
		require.NoError(t, err)
		require.True(t, dash.Success)
	})
}
