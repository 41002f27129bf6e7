package market_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

// tokenFromInviteLink extracts the raw invite token from a minted link.
func tokenFromInviteLink(t *testing.T, link string) string {
	t.Helper()

	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token, "invite link should carry a token parameter")
	return token
}

// TestInviteFlow covers minting an admin invite and redeeming it during
// sign-in.
func TestInviteFlow(t *testing.T) {
	baseURL, cleanup := setupMarketContainer(t)
	defer cleanup()

	client := marketsdk.NewClient(baseURL)
	admin := bootstrapAdmin(t, client)
	ctx := context.Background()

	const inviteeEmail = "newadmin@kmrmotors.test"

	resp, err := admin.CreateInvite(ctx, marketsdk.CreateInviteRequest{Email: inviteeEmail})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, inviteeEmail, resp.Email)
	token := tokenFromInviteLink(t, resp.Link)

	t.Run("outstanding invites are listed without tokens", func(t *testing.T) {
		list, err := admin.ListInvites(ctx)
		require.NoError(t, err)
		require.Len(t, list.Invites, 1)
		require.Equal(t, inviteeEmail, list.Invites[0].Email)
	})

	t.Run("redeeming on sign-in grants admin", func(t *testing.T) {
		invitee := client.
			WithToken(mintToken(t, "idp|newadmin", inviteeEmail, "New Admin")).
			WithInviteToken(token)

		me, err := invitee.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "ADMIN", me.User.Role)

		// The invite is consumed.
		list, err := admin.ListInvites(ctx)
		require.NoError(t, err)
		require.Empty(t, list.Invites)
	})

	t.Run("a consumed token is inert", func(t *testing.T) {
		freeloader := client.
			WithToken(mintToken(t, "idp|freeloader", "freeloader@kmrmotors.test", "Freeloader")).
			WithInviteToken(token)

		// Sign-in proceeds but the dead token grants nothing.
		me, err := freeloader.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "USER", me.User.Role)
	})

	t.Run("invite with the wrong email does not elevate", func(t *testing.T) {
		second, err := admin.CreateInvite(ctx, marketsdk.CreateInviteRequest{Email: "intended@kmrmotors.test"})
		require.NoError(t, err)
		wrongToken := tokenFromInviteLink(t, second.Link)

		other := client.
			WithToken(mintToken(t, "idp|other", "other@kmrmotors.test", "Other")).
			WithInviteToken(wrongToken)

		me, err := other.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "USER", me.User.Role)

		// The mismatched invite stays outstanding for its intended email.
		list, err := admin.ListInvites(ctx)
		require.NoError(t, err)
		require.Len(t, list.Invites, 1)
	})

	t.Run("minting requires admin", func(t *testing.T) {
		rider := client.WithToken(mintToken(t, "idp|rider-2", "rider2@kmrmotors.test", "Rider"))
		_, err := rider.CreateInvite(ctx, marketsdk.CreateInviteRequest{Email: "nope@kmrmotors.test"})
		assertAPIStatus(t, err, http.StatusForbidden, "invite mint as user")
	})
}
