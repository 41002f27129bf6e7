package market_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

// TestRateLimiting runs against production-default limits and verifies the
// strict class actually throttles. Other tests relax limits instead.
func TestRateLimiting(t *testing.T) {
	baseURL, cleanup := setupMarketContainerWithEnv(t, nil)
	defer cleanup()

	client := marketsdk.NewClient(baseURL)
	ctx := context.Background()

	// The bootstrap endpoint sits in the strict class (10 per minute). Keep
	// hammering it with a bad token until the limiter kicks in.
	limited := false
	for i := 0; i < 30 && !limited; i++ {
		_, err := client.Bootstrap(ctx, marketsdk.BootstrapRequest{
			Token: "wrong-token",
			Email: "nobody@kmrmotors.test",
		})
		require.Error(t, err)

		var apiErr *marketsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			// Not throttled yet.
		case http.StatusTooManyRequests:
			limited = true
		default:
			t.Fatalf("unexpected status %d: %s", apiErr.StatusCode, apiErr.Message)
		}
	}
	require.True(t, limited, "strict endpoint should throttle within 30 rapid requests")

	// The public catalog class is far more generous; a handful of reads
	// must not trip it.
	for i := 0; i < 20; i++ {
		_, err := client.ListBikes(ctx, marketsdk.ListBikesOptions{})
		require.NoError(t, err)
	}
}
