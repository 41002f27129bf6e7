package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/idx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("an admin already exists")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapDisabled     = errors.New("bootstrap is not configured")
	ErrBootstrapInvalidEmail = errors.New("invalid bootstrap email")
)

// BootstrapService performs the explicit one-time elevation of the first
// admin. It replaces any implicit first-user-wins rule: nothing happens on
// sign-in paths, only on a deliberate, token-protected call.
type BootstrapService struct {
	Store store.Store

	// Token guards the endpoint. Empty disables bootstrap entirely.
	Token string
}

// Bootstrap designates email as the initial admin. If a user with that
// email already exists it is elevated, otherwise an unlinked record is
// created and adopted on the admin's first sign-in. Fails once any admin
// exists.
func (s *BootstrapService) Bootstrap(ctx context.Context, token, email string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if s.Token == "" {
		return domain.User{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrBootstrapInvalidEmail
	}

	var admin domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		admins, err := tx.Users().CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins > 0 {
			return ErrBootstrapAlready
		}

		u, err := tx.Users().GetByEmail(ctx, email)
		switch {
		case err == nil:
			if err := tx.Users().UpdateRole(ctx, u.ID, domain.RoleAdmin); err != nil {
				return err
			}
			u.Role = domain.RoleAdmin
			admin = u
			return nil

		case errors.Is(err, store.ErrNotFound):
			now := time.Now().UTC()
			admin = domain.User{
				ID:        idx.New().String(),
				Email:     email,
				Role:      domain.RoleAdmin,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return tx.Users().Create(ctx, admin)

		default:
			return err
		}
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("initial admin bootstrapped",
		slog.String("user_id", admin.ID),
		slog.String("email", email),
	)
	return admin, nil
}
