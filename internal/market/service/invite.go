package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/cryptox"
	"github.com/kmrmotors/motodrive/pkg/idx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

var (
	ErrInvalidInviteEmail = errors.New("invalid invite email")
	ErrInviteNotFound     = errors.New("invite not found or expired")
)

// InviteTTL is how long an admin invite stays redeemable.
const InviteTTL = 24 * time.Hour

// InviteService mints and redeems single-use admin invites. Only the
// SHA-256 fingerprint of a token is ever stored; the raw token appears once
// in the returned share link.
type InviteService struct {
	Store store.Store

	// AppBaseURL is the public frontend URL embedded in invite links.
	AppBaseURL string
}

// InviteLink is the outcome of minting an invite.
type InviteLink struct {
	Invite domain.AdminInvite
	Link   string
}

// Issue mints an invite for email, valid for InviteTTL from now.
func (s *InviteService) Issue(ctx context.Context, email string) (InviteLink, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return InviteLink{}, ErrInvalidInviteEmail
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return InviteLink{}, err
	}

	now := time.Now().UTC()
	invite := domain.AdminInvite{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(InviteTTL),
		CreatedAt: now,
	}

	if err := s.Store.Invites().Create(ctx, invite); err != nil {
		log.Error("failed to create invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return InviteLink{}, err
	}

	log.Info("admin invite issued",
		slog.String("invite_id", invite.ID),
		slog.String("email", email),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return InviteLink{Invite: invite, Link: s.buildLink(token)}, nil
}

func (s *InviteService) buildLink(token string) string {
	base := strings.TrimSuffix(s.AppBaseURL, "/")
	return base + "?token=" + url.QueryEscape(token)
}

// Validate returns the invite matching token and email, provided it has not
// expired. A miss on any of the three conditions is ErrInviteNotFound; the
// caller cannot tell which condition failed.
func (s *InviteService) Validate(ctx context.Context, st store.Store, token, email string) (domain.AdminInvite, error) {
	hash := cryptox.FingerprintToken(token)
	email = strings.ToLower(strings.TrimSpace(email))

	invite, err := st.Invites().GetActiveByTokenHash(ctx, hash, email, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AdminInvite{}, ErrInviteNotFound
		}
		return domain.AdminInvite{}, err
	}
	return invite, nil
}

// Consume deletes a validated invite by id. The delete is what makes
// invites single-use; two concurrent redeemers race on it and exactly one
// wins, so Validate and Consume must share a transaction.
func (s *InviteService) Consume(ctx context.Context, st store.Store, id string) error {
	if err := st.Invites().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	return nil
}

// Redeem validates and consumes in one step against st, which should be a
// Tx when redemption is part of a larger operation.
func (s *InviteService) Redeem(ctx context.Context, st store.Store, token, email string) error {
	invite, err := s.Validate(ctx, st, token, email)
	if err != nil {
		return err
	}
	return s.Consume(ctx, st, invite.ID)
}

// List returns all invites newest-first.
func (s *InviteService) List(ctx context.Context) ([]domain.AdminInvite, error) {
	return s.Store.Invites().List(ctx)
}

// DeleteExpired removes lapsed invites. Called by the housekeeping worker.
func (s *InviteService) DeleteExpired(ctx context.Context) error {
	return s.Store.Invites().DeleteExpired(ctx, time.Now().UTC())
}
