package sqlite

import (
	"context"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

type invitesRepo struct {
	db dbtx
}

func (r *invitesRepo) Create(ctx context.Context, inv domain.AdminInvite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_invites (id, email, token_hash, expires_at, created_at)
		VALUES (?, lower(?), ?, ?, ?)`,
		inv.ID, inv.Email, inv.TokenHash, inv.ExpiresAt, inv.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetActiveByTokenHash(ctx context.Context, hash, email string, now time.Time) (domain.AdminInvite, error) {
	var inv domain.AdminInvite
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, token_hash, expires_at, created_at
		FROM admin_invites
		WHERE token_hash = ? AND email = lower(?) AND expires_at > ?`,
		hash, email, now,
	).Scan(&inv.ID, &inv.Email, &inv.TokenHash, &inv.ExpiresAt, &inv.CreatedAt)
	if err != nil {
		return domain.AdminInvite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admin_invites WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) List(ctx context.Context) ([]domain.AdminInvite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, token_hash, expires_at, created_at
		FROM admin_invites
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.AdminInvite
	for rows.Next() {
		var inv domain.AdminInvite
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.TokenHash, &inv.ExpiresAt, &inv.CreatedAt); err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *invitesRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admin_invites WHERE expires_at <= ?`, now)
	return err
}
