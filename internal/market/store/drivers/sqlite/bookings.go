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

type bookingsRepo struct {
	db dbtx
}

const bookingColumns = `id, bike_id, user_id, booking_date, start_time, end_time,
	status, notes, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (domain.TestDriveBooking, error) {
	var b domain.TestDriveBooking
	err := row.Scan(
		&b.ID, &b.BikeID, &b.UserID, &b.BookingDate, &b.StartTime, &b.EndTime,
		&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.TestDriveBooking{}, mapNotFound(err)
	}
	return b, nil
}

func (r *bookingsRepo) Create(ctx context.Context, b domain.TestDriveBooking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO test_drive_bookings (`+bookingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.BikeID, b.UserID, b.BookingDate, b.StartTime, b.EndTime,
		string(b.Status), b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *bookingsRepo) GetByID(ctx context.Context, id string) (domain.TestDriveBooking, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+bookingColumns+` FROM test_drive_bookings WHERE id = ?`, id)
	return scanBooking(row)
}

func (r *bookingsRepo) ActiveSlotExists(ctx context.Context, bikeID string, date time.Time, startTime string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM test_drive_bookings
		WHERE bike_id = ? AND booking_date = ? AND start_time = ?
		  AND status IN ('PENDING', 'CONFIRMED')`,
		bikeID, date, startTime,
	).Scan(&n)
	return n > 0, err
}

func (r *bookingsRepo) LatestNonCancelledForUserAndBike(ctx context.Context, userID, bikeID string) (domain.TestDriveBooking, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+bookingColumns+` FROM test_drive_bookings
		WHERE user_id = ? AND bike_id = ? AND status != 'CANCELLED'
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		userID, bikeID,
	)
	return scanBooking(row)
}

func (r *bookingsRepo) SetStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE test_drive_bookings SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

const bookingDetailSelect = `
	SELECT t.id, t.bike_id, t.user_id, t.booking_date, t.start_time, t.end_time,
	       t.status, t.notes, t.created_at, t.updated_at,
	       b.id, b.make, b.model, b.year, b.price, b.mileage, b.body_type,
	       b.fuel_type, b.transmission, b.color, b.status, b.featured,
	       b.images, b.description, b.created_at, b.updated_at`

func scanBookingDetail(rows interface{ Scan(...any) error }, withUser bool) (store.BookingDetail, error) {
	var (
		d      store.BookingDetail
		images string
		ext    string
	)
	dest := []any{
		&d.Booking.ID, &d.Booking.BikeID, &d.Booking.UserID,
		&d.Booking.BookingDate, &d.Booking.StartTime, &d.Booking.EndTime,
		&d.Booking.Status, &d.Booking.Notes, &d.Booking.CreatedAt, &d.Booking.UpdatedAt,
		&d.Bike.ID, &d.Bike.Make, &d.Bike.Model, &d.Bike.Year, &d.Bike.Price,
		&d.Bike.Mileage, &d.Bike.BodyType, &d.Bike.FuelType, &d.Bike.Transmission,
		&d.Bike.Color, &d.Bike.Status, &d.Bike.Featured, &images, &d.Bike.Description,
		&d.Bike.CreatedAt, &d.Bike.UpdatedAt,
	}
	if withUser {
		d.User = &domain.User{}
		dest = append(dest,
			&d.User.ID, &ext, &d.User.Email, &d.User.Name, &d.User.Phone,
			&d.User.ImageURL, &d.User.Role, &d.User.CreatedAt, &d.User.UpdatedAt,
		)
	}
	if err := rows.Scan(dest...); err != nil {
		return store.BookingDetail{}, err
	}
	if withUser {
		d.User.ExternalID = ext
	}
	if err := json.Unmarshal([]byte(images), &d.Bike.Images); err != nil {
		return store.BookingDetail{}, fmt.Errorf("decode bike images: %w", err)
	}
	return d, nil
}

func (r *bookingsRepo) ListForUser(ctx context.Context, userID string) ([]store.BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, bookingDetailSelect+`
		FROM test_drive_bookings t
		JOIN bikes b ON b.id = t.bike_id
		WHERE t.user_id = ?
		ORDER BY t.booking_date DESC, t.start_time ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []store.BookingDetail
	for rows.Next() {
		d, err := scanBookingDetail(rows, false)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *bookingsRepo) ListAll(ctx context.Context, q store.BookingQuery) ([]store.BookingDetail, error) {
	clauses := []string{`1 = 1`}
	var args []any

	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		clauses = append(clauses, `(lower(b.make) LIKE ? OR lower(b.model) LIKE ? OR lower(u.name) LIKE ? OR lower(u.email) LIKE ?)`)
		args = append(args, like, like, like, like)
	}
	if q.Status != "" {
		clauses = append(clauses, `t.status = ?`)
		args = append(args, string(q.Status))
	}

	query := bookingDetailSelect + `,
	       u.id, COALESCE(u.external_id, ''), u.email, u.name, u.phone,
	       u.image_url, u.role, u.created_at, u.updated_at
		FROM test_drive_bookings t
		JOIN bikes b ON b.id = t.bike_id
		JOIN users u ON u.id = t.user_id
		WHERE ` + strings.Join(clauses, " AND ") + `
		ORDER BY t.booking_date DESC, t.start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []store.BookingDetail
	for rows.Next() {
		d, err := scanBookingDetail(rows, true)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *bookingsRepo) StatusCounts(ctx context.Context) (map[domain.BookingStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM test_drive_bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[domain.BookingStatus(status)] = n
	}
	return counts, rows.Err()
}
