package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/pkg/cryptox"
)

func inviteTokenFromLink(t *testing.T, link string) string {
	t.Helper()

	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func TestInviteIssueAndValidate(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InviteService{Store: st, AppBaseURL: "https://motodrive.example"}
	ctx := context.Background()

	link, err := svc.Issue(ctx, "New.Admin@Example.com")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link.Link, "https://motodrive.example?token="))
	require.Equal(t, "new.admin@example.com", link.Invite.Email)
	require.WithinDuration(t, time.Now().Add(InviteTTL), link.Invite.ExpiresAt, time.Minute)

	token := inviteTokenFromLink(t, link.Link)

	// Only the fingerprint is persisted.
	require.NotEqual(t, token, link.Invite.TokenHash)
	require.Equal(t, cryptox.FingerprintToken(token), link.Invite.TokenHash)

	t.Run("validates with matching token and email", func(t *testing.T) {
		inv, err := svc.Validate(ctx, st, token, "new.admin@example.com")
		require.NoError(t, err)
		require.Equal(t, link.Invite.ID, inv.ID)
	})

	t.Run("rejects wrong email", func(t *testing.T) {
		_, err := svc.Validate(ctx, st, token, "other@example.com")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		_, err := svc.Validate(ctx, st, "bogus", "new.admin@example.com")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("rejects malformed email on issue", func(t *testing.T) {
		_, err := svc.Issue(ctx, "not-an-email")
		require.ErrorIs(t, err, ErrInvalidInviteEmail)
	})
}

func TestInviteSingleUse(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InviteService{Store: st, AppBaseURL: "https://motodrive.example"}
	ctx := context.Background()

	link, err := svc.Issue(ctx, "once@example.com")
	require.NoError(t, err)
	token := inviteTokenFromLink(t, link.Link)

	require.NoError(t, svc.Redeem(ctx, st, token, "once@example.com"))

	// The consumed invite never validates again.
	_, err = svc.Validate(ctx, st, token, "once@example.com")
	require.ErrorIs(t, err, ErrInviteNotFound)

	require.ErrorIs(t, svc.Redeem(ctx, st, token, "once@example.com"), ErrInviteNotFound)
}

func TestInviteExpiry(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InviteService{Store: st, AppBaseURL: "https://motodrive.example"}
	ctx := context.Background()

	link, err := svc.Issue(ctx, "late@example.com")
	require.NoError(t, err)
	token := inviteTokenFromLink(t, link.Link)

	// Force the expiry into the past.
	require.NoError(t, st.Invites().Delete(ctx, link.Invite.ID))
	expired := link.Invite
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, st.Invites().Create(ctx, expired))

	_, err = svc.Validate(ctx, st, token, "late@example.com")
	require.ErrorIs(t, err, ErrInviteNotFound)

	t.Run("housekeeping removes it", func(t *testing.T) {
		require.NoError(t, svc.DeleteExpired(ctx))
		invites, err := svc.List(ctx)
		require.NoError(t, err)
		require.Empty(t, invites)
	})
}

func TestInviteListNewestFirst(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InviteService{Store: st, AppBaseURL: "https://motodrive.example"}
	ctx := context.Background()

	first, err := svc.Issue(ctx, "first@example.com")
	require.NoError(t, err)

	// Ensure a strictly later created_at for the second invite.
	time.Sleep(5 * time.Millisecond)

	second, err := svc.Issue(ctx, "second@example.com")
	require.NoError(t, err)

	invites, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 2)
	require.Equal(t, second.Invite.ID, invites[0].ID)
	require.Equal(t, first.Invite.ID, invites[1].ID)
}
