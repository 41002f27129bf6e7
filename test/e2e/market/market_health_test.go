package market_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

// TestHealthEndpoints verifies liveness and readiness reporting on a
// freshly started service.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupMarketContainer(t)
	defer cleanup()

	client := marketsdk.NewClient(baseURL)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Uptime)
	require.NotEmpty(t, health.Version)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Verifier)
}
