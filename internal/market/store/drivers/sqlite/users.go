package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, external_id, email, name, phone, image_url, role, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u   domain.User
		ext sql.NullString
	)
	err := row.Scan(&u.ID, &ext, &u.Email, &u.Name, &u.Phone, &u.ImageURL, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ExternalID = mapNullString(ext)
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE external_id = ?`, externalID)
	return scanUser(row)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = lower(?)`, email)
	return scanUser(row)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, external_id, email, name, phone, image_url, role, created_at, updated_at)
		VALUES (?, ?, lower(?), ?, ?, ?, ?, ?, ?)`,
		u.ID, mapStringNull(u.ExternalID), u.Email, u.Name, u.Phone, u.ImageURL, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) LinkExternalID(ctx context.Context, userID, externalID, name, imageURL string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET external_id = ?,
		    name = CASE WHEN ? != '' THEN ? ELSE name END,
		    image_url = CASE WHEN ? != '' THEN ? ELSE image_url END,
		    updated_at = ?
		WHERE id = ?`,
		externalID, name, name, imageURL, imageURL, time.Now().UTC(), userID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateContact(ctx context.Context, userID, name, phone string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET name = ?, phone = ?, updated_at = ? WHERE id = ?`,
		name, phone, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = 'ADMIN'`).Scan(&n)
	return n, err
}
