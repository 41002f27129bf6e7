package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateToken(0)
		require.Error(t, err)
		_, err = GenerateToken(-1)
		require.Error(t, err)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 64 {
			tok, err := GenerateToken(TokenSize256)
			require.NoError(t, err)
			require.NotEmpty(t, tok)
			_, dup := seen[tok]
			require.False(t, dup)
			seen[tok] = struct{}{}
		}
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	a := FingerprintToken("token-a")
	b := FingerprintToken("token-b")

	require.Equal(t, a, FingerprintToken("token-a"), "fingerprints are deterministic")
	require.NotEqual(t, a, b)
	require.Len(t, a, 43) // base64url of 32 bytes, no padding
}
