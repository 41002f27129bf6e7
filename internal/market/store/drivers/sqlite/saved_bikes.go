package sqlite

import (
	"context"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

type savedBikesRepo struct {
	db dbtx
}

func (r *savedBikesRepo) Get(ctx context.Context, userID, bikeID string) (domain.SavedBike, error) {
	var s domain.SavedBike
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, bike_id, saved_at
		FROM user_saved_bikes WHERE user_id = ? AND bike_id = ?`,
		userID, bikeID,
	).Scan(&s.UserID, &s.BikeID, &s.SavedAt)
	if err != nil {
		return domain.SavedBike{}, mapNotFound(err)
	}
	return s, nil
}

func (r *savedBikesRepo) Create(ctx context.Context, s domain.SavedBike) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_saved_bikes (user_id, bike_id, saved_at) VALUES (?, ?, ?)`,
		s.UserID, s.BikeID, s.SavedAt,
	)
	return mapConstraint(err)
}

func (r *savedBikesRepo) Delete(ctx context.Context, userID, bikeID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM user_saved_bikes WHERE user_id = ? AND bike_id = ?`,
		userID, bikeID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *savedBikesRepo) ListBikes(ctx context.Context, userID string) ([]domain.Bike, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.id, b.make, b.model, b.year, b.price, b.mileage, b.body_type,
		       b.fuel_type, b.transmission, b.color, b.status, b.featured,
		       b.images, b.description, b.created_at, b.updated_at
		FROM user_saved_bikes s
		JOIN bikes b ON b.id = s.bike_id
		WHERE s.user_id = ?
		ORDER BY s.saved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bikes []domain.Bike
	for rows.Next() {
		b, err := scanBike(rows)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, b)
	}
	return bikes, rows.Err()
}

func (r *savedBikesRepo) BikeIDs(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT bike_id FROM user_saved_bikes WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
