package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
)

func newDirectory(st store.Store, adminEmails ...string) *DirectoryService {
	return &DirectoryService{
		Store:       st,
		Invites:     &InviteService{Store: st, AppBaseURL: "https://motodrive.example"},
		AdminEmails: adminEmails,
	}
}

func TestResolveProvisionsUser(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newDirectory(st)
	ctx := context.Background()

	p := &domain.Principal{
		ExternalID: "idp|123",
		Email:      "Rider@Example.com",
		Name:       "Ada Rider",
		ImageURL:   "https://img.example/a.png",
	}

	user, err := svc.Resolve(ctx, p, "")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "rider@example.com", user.Email)
	require.Equal(t, domain.RoleUser, user.Role)
	require.Equal(t, "idp|123", user.ExternalID)

	t.Run("second resolution reuses the record", func(t *testing.T) {
		again, err := svc.Resolve(ctx, p, "")
		require.NoError(t, err)
		require.Equal(t, user.ID, again.ID)
	})

	t.Run("nil principal resolves to nothing", func(t *testing.T) {
		user, err := svc.Resolve(ctx, nil, "")
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("principal without email rejected", func(t *testing.T) {
		_, err := svc.Resolve(ctx, &domain.Principal{ExternalID: "idp|999"}, "")
		require.ErrorIs(t, err, ErrPrincipalIncomplete)
	})
}

func TestResolveLinksExistingEmail(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newDirectory(st)
	ctx := context.Background()

	// An unlinked record, as bootstrap creates.
	existing := seedUser(t, st, "linked@example.com", domain.RoleUser)
	require.NoError(t, st.Users().LinkExternalID(ctx, existing.ID, "", "", ""))

	resolved, err := svc.Resolve(ctx, &domain.Principal{
		ExternalID: "idp|new",
		Email:      "linked@example.com",
		Name:       "Fresh Name",
	}, "")
	require.NoError(t, err)
	require.Equal(t, existing.ID, resolved.ID)
	require.Equal(t, "idp|new", resolved.ExternalID)
	require.Equal(t, "Fresh Name", resolved.Name)
}

func TestResolveAdminAllowList(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newDirectory(st, "Boss@Example.com")
	ctx := context.Background()

	user, err := svc.Resolve(ctx, &domain.Principal{
		ExternalID: "idp|boss",
		Email:      "boss@example.com",
	}, "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, user.Role)

	t.Run("existing user elevated on later resolution", func(t *testing.T) {
		plain := seedUser(t, st, "late@example.com", domain.RoleUser)

		elevated := newDirectory(st, "late@example.com")
		resolved, err := elevated.Resolve(ctx, &domain.Principal{
			ExternalID: plain.ExternalID,
			Email:      plain.Email,
		}, "")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, resolved.Role)
	})
}

func TestResolveRedeemsInvite(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newDirectory(st)
	ctx := context.Background()

	link, err := svc.Invites.Issue(ctx, "invited@example.com")
	require.NoError(t, err)
	token := inviteTokenFromLink(t, link.Link)

	user, err := svc.Resolve(ctx, &domain.Principal{
		ExternalID: "idp|invited",
		Email:      "invited@example.com",
	}, token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, user.Role)

	// Single use: the invite is gone.
	_, err = svc.Invites.Validate(ctx, st, token, "invited@example.com")
	require.ErrorIs(t, err, ErrInviteNotFound)

	t.Run("invite for a different email is ignored", func(t *testing.T) {
		other, err := svc.Invites.Issue(ctx, "someone-else@example.com")
		require.NoError(t, err)
		otherToken := inviteTokenFromLink(t, other.Link)

		user, err := svc.Resolve(ctx, &domain.Principal{
			ExternalID: "idp|opportunist",
			Email:      "opportunist@example.com",
		}, otherToken)
		require.NoError(t, err)
		require.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("stale token never blocks sign-in", func(t *testing.T) {
		user, err := svc.Resolve(ctx, &domain.Principal{
			ExternalID: "idp|stale",
			Email:      "stale@example.com",
		}, "garbage-token")
		require.NoError(t, err)
		require.Equal(t, domain.RoleUser, user.Role)
	})
}

func TestCompleteOnboarding(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newDirectory(st)
	ctx := context.Background()

	user := seedUser(t, st, "rider@example.com", domain.RoleUser)

	updated, err := svc.CompleteOnboarding(ctx, user.ID, "  Ada Rider  ", " +61 400 000 000 ")
	require.NoError(t, err)
	require.Equal(t, "Ada Rider", updated.Name)
	require.Equal(t, "+61 400 000 000", updated.Phone)

	_, err = svc.CompleteOnboarding(ctx, "missing", "x", "y")
	require.ErrorIs(t, err, ErrUserNotFound)
}
