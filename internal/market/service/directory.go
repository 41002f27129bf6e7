package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/idx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

var (
	ErrPrincipalIncomplete = errors.New("principal is missing an email")
	ErrUserNotFound        = errors.New("user not found")
)

// DirectoryService maintains local user records for identity-provider
// principals. The provider owns authentication; this service only mirrors
// the asserted identity and layers the local role on top.
type DirectoryService struct {
	Store   store.Store
	Invites *InviteService

	// AdminEmails are always elevated on resolution regardless of invites.
	AdminEmails []string
}

// Resolve maps a principal to its local user record, provisioning one on
// first sight. A nil principal resolves to (nil, nil); anonymous requests
// are not an error here, authorization happens at the handlers.
//
// inviteToken, when non-empty, is redeemed during resolution and grants the
// admin role. Redemption and provisioning share a transaction so a consumed
// invite always produces an admin.
func (s *DirectoryService) Resolve(ctx context.Context, p *domain.Principal, inviteToken string) (*domain.User, error) {
	if p == nil {
		return nil, nil
	}

	log := slogx.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email == "" {
		return nil, ErrPrincipalIncomplete
	}

	var resolved domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role := domain.RoleUser
		if s.isAllowListed(email) {
			role = domain.RoleAdmin
		}

		if inviteToken != "" {
			switch err := s.Invites.Redeem(ctx, tx, inviteToken, email); {
			case err == nil:
				role = domain.RoleAdmin
				log.Info("admin invite redeemed", slog.String("email", email))
			case errors.Is(err, ErrInviteNotFound):
				// A stale link never blocks sign-in.
				log.Warn("ignoring invalid invite token", slog.String("email", email))
			default:
				return err
			}
		}

		u, err := tx.Users().GetByExternalID(ctx, p.ExternalID)
		switch {
		case err == nil:
			resolved = u
			return s.elevate(ctx, tx, &resolved, role)

		case errors.Is(err, store.ErrNotFound):
			// Fall through to email matching below.

		default:
			return err
		}

		// The email may already exist unlinked (bootstrap admins) or under
		// a previous provider identity. Adopt the record rather than
		// violating the email uniqueness constraint.
		u, err = tx.Users().GetByEmail(ctx, email)
		switch {
		case err == nil:
			if err := tx.Users().LinkExternalID(ctx, u.ID, p.ExternalID, p.Name, p.ImageURL); err != nil {
				return err
			}
			resolved, err = tx.Users().GetByID(ctx, u.ID)
			if err != nil {
				return err
			}
			log.Info("linked provider identity to existing user",
				slog.String("user_id", u.ID),
			)
			return s.elevate(ctx, tx, &resolved, role)

		case errors.Is(err, store.ErrNotFound):
			now := time.Now().UTC()
			resolved = domain.User{
				ID:         idx.New().String(),
				ExternalID: p.ExternalID,
				Email:      email,
				Name:       p.Name,
				Phone:      p.Phone,
				ImageURL:   p.ImageURL,
				Role:       role,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := tx.Users().Create(ctx, resolved); err != nil {
				return err
			}
			log.Info("provisioned user",
				slog.String("user_id", resolved.ID),
				slog.String("role", string(role)),
			)
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// elevate bumps u to role when that is an upgrade. Roles never move down
// through resolution.
func (s *DirectoryService) elevate(ctx context.Context, tx store.Tx, u *domain.User, role domain.Role) error {
	if role != domain.RoleAdmin || u.IsAdmin() {
		return nil
	}
	if err := tx.Users().UpdateRole(ctx, u.ID, domain.RoleAdmin); err != nil {
		return err
	}
	u.Role = domain.RoleAdmin
	slogx.FromContext(ctx).Info("user elevated to admin", slog.String("user_id", u.ID))
	return nil
}

func (s *DirectoryService) isAllowListed(email string) bool {
	for _, allowed := range s.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return false
}

// GetByID returns a user by local id.
func (s *DirectoryService) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// CompleteOnboarding records the contact details collected after first
// sign-in.
func (s *DirectoryService) CompleteOnboarding(ctx context.Context, userID, name, phone string) (domain.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if err := s.Store.Users().UpdateContact(ctx, userID, name, phone); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return s.GetByID(ctx, userID)
}
