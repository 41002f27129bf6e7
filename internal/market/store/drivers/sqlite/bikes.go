package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
)

type bikesRepo struct {
	db dbtx
}

const bikeColumns = `id, make, model, year, price, mileage, body_type, fuel_type,
	transmission, color, status, featured, images, description, created_at, updated_at`

func scanBike(row interface{ Scan(...any) error }) (domain.Bike, error) {
	var (
		b      domain.Bike
		images string
	)
	err := row.Scan(
		&b.ID, &b.Make, &b.Model, &b.Year, &b.Price, &b.Mileage,
		&b.BodyType, &b.FuelType, &b.Transmission, &b.Color,
		&b.Status, &b.Featured, &images, &b.Description,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Bike{}, mapNotFound(err)
	}
	if err := json.Unmarshal([]byte(images), &b.Images); err != nil {
		return domain.Bike{}, fmt.Errorf("decode bike images: %w", err)
	}
	return b, nil
}

func (r *bikesRepo) GetByID(ctx context.Context, id string) (domain.Bike, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE id = ?`, id)
	return scanBike(row)
}

// listFilters builds the WHERE clause shared by List's page and count
// queries. The status predicate is unconditional; only available inventory
// is ever listed.
func listFilters(q store.BikeQuery) (string, []any) {
	clauses := []string{`status = 'AVAILABLE'`}
	var args []any

	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		clauses = append(clauses, `(lower(make) LIKE ? OR lower(model) LIKE ? OR lower(description) LIKE ?)`)
		args = append(args, like, like, like)
	}
	if q.Make != "" {
		clauses = append(clauses, `lower(make) = lower(?)`)
		args = append(args, q.Make)
	}
	if q.BodyType != "" {
		clauses = append(clauses, `lower(body_type) = lower(?)`)
		args = append(args, q.BodyType)
	}
	if q.FuelType != "" {
		clauses = append(clauses, `lower(fuel_type) = lower(?)`)
		args = append(args, q.FuelType)
	}
	if q.Transmission != "" {
		clauses = append(clauses, `lower(transmission) = lower(?)`)
		args = append(args, q.Transmission)
	}
	if q.MinPrice > 0 {
		clauses = append(clauses, `price >= ?`)
		args = append(args, q.MinPrice)
	}
	if q.MaxPrice > 0 {
		clauses = append(clauses, `price <= ?`)
		args = append(args, q.MaxPrice)
	}

	return strings.Join(clauses, " AND "), args
}

func orderClause(sort store.BikeSort) string {
	switch sort {
	case store.SortPriceAsc:
		return `price ASC, id ASC`
	case store.SortPriceDesc:
		return `price DESC, id ASC`
	default:
		return `created_at DESC, id DESC`
	}
}

func (r *bikesRepo) List(ctx context.Context, q store.BikeQuery) ([]domain.Bike, int, error) {
	where, args := listFilters(q)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bikes WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE ` + where +
		` ORDER BY ` + orderClause(q.Sort) + ` LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bikes []domain.Bike
	for rows.Next() {
		b, err := scanBike(rows)
		if err != nil {
			return nil, 0, err
		}
		bikes = append(bikes, b)
	}
	return bikes, total, rows.Err()
}

func (r *bikesRepo) FilterValues(ctx context.Context) (store.FilterValues, error) {
	var fv store.FilterValues

	distinct := func(column string, dst *[]string) error {
		rows, err := r.db.QueryContext(ctx, `
			SELECT DISTINCT `+column+` FROM bikes
			WHERE status = 'AVAILABLE' AND `+column+` != ''
			ORDER BY `+column+` ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			*dst = append(*dst, v)
		}
		return rows.Err()
	}

	if err := distinct("make", &fv.Makes); err != nil {
		return store.FilterValues{}, err
	}
	if err := distinct("body_type", &fv.BodyTypes); err != nil {
		return store.FilterValues{}, err
	}
	if err := distinct("fuel_type", &fv.FuelTypes); err != nil {
		return store.FilterValues{}, err
	}
	if err := distinct("transmission", &fv.Transmissions); err != nil {
		return store.FilterValues{}, err
	}

	// COALESCE keeps the range well-defined over an empty catalog.
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0)
		FROM bikes WHERE status = 'AVAILABLE'`,
	).Scan(&fv.MinPrice, &fv.MaxPrice)
	if err != nil {
		return store.FilterValues{}, err
	}
	return fv, nil
}

func (r *bikesRepo) Create(ctx context.Context, b domain.Bike) error {
	if b.Images == nil {
		b.Images = []string{}
	}
	images, err := json.Marshal(b.Images)
	if err != nil {
		return fmt.Errorf("encode bike images: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO bikes (`+bikeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Make, b.Model, b.Year, b.Price, b.Mileage,
		b.BodyType, b.FuelType, b.Transmission, b.Color,
		string(b.Status), b.Featured, string(images), b.Description,
		b.CreatedAt, b.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *bikesRepo) SetStatus(ctx context.Context, id string, status domain.BikeStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bikes SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bikesRepo) SetFeatured(ctx context.Context, id string, featured bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bikes SET featured = ?, updated_at = ? WHERE id = ?`,
		featured, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bikesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bikes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bikesRepo) StatusCounts(ctx context.Context) (map[domain.BikeStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM bikes GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.BikeStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[domain.BikeStatus(status)] = n
	}
	return counts, rows.Err()
}

func (r *bikesRepo) CountFeatured(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bikes WHERE featured = 1`).Scan(&n)
	return n, err
}

func (r *bikesRepo) CountSoldWithCompletedBooking(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bikes
		WHERE status = 'SOLD'
		  AND id IN (SELECT bike_id FROM test_drive_bookings WHERE status = 'COMPLETED')`,
	).Scan(&n)
	return n, err
}
