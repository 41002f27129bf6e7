package store

import (
	"context"
	"errors"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it.
// Sub-repositories keep concerns tidy and testable, and the Tx variants stop
// callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Invites() Invites
	Bikes() Bikes
	SavedBikes() SavedBikes
	Bookings() Bookings
	Dealership() Dealership

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. This is the recommended way to run
	// multi-step operations that must be atomic (e.g. invite consumption
	// plus user provisioning).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetByID returns a user by local id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByExternalID resolves an identity-provider principal id.
	GetByExternalID(ctx context.Context, externalID string) (domain.User, error)

	// GetByEmail is used to detect re-registration under a new provider id.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user (id is provided by the app via ULID).
	Create(ctx context.Context, u domain.User) error

	// LinkExternalID attaches a provider id to an existing record and
	// best-effort refreshes name/image (empty values leave fields alone).
	LinkExternalID(ctx context.Context, userID, externalID, name, imageURL string) error

	// UpdateContact mutates name and phone and bumps updated_at.
	UpdateContact(ctx context.Context, userID, name, phone string) error

	// UpdateRole sets the role. Roles are sticky; callers only elevate.
	UpdateRole(ctx context.Context, userID string, role domain.Role) error

	// CountAdmins returns the number of admin users.
	CountAdmins(ctx context.Context) (int, error)
}

type Invites interface {
	// Create writes a new invite (token_hash is the SHA-256 fingerprint of
	// the opaque invite token).
	Create(ctx context.Context, inv domain.AdminInvite) error

	// GetActiveByTokenHash returns an unexpired invite matching both the
	// fingerprint and the email, or ErrNotFound.
	GetActiveByTokenHash(ctx context.Context, hash, email string, now time.Time) (domain.AdminInvite, error)

	// Delete removes an invite by id. Called exactly once per successful
	// validation to guarantee single use.
	Delete(ctx context.Context, id string) error

	// List returns all invites newest-first for administrative review.
	List(ctx context.Context) ([]domain.AdminInvite, error)

	// DeleteExpired is housekeeping.
	DeleteExpired(ctx context.Context, now time.Time) error
}

// BikeSort enumerates the supported listing sort orders.
type BikeSort string

const (
	SortNewest    BikeSort = "newest"
	SortPriceAsc  BikeSort = "priceAsc"
	SortPriceDesc BikeSort = "priceDesc"
)

// BikeQuery captures catalog listing criteria. Zero values mean "no
// constraint"; MaxPrice <= 0 means unbounded above.
type BikeQuery struct {
	Search       string
	Make         string
	BodyType     string
	FuelType     string
	Transmission string
	MinPrice     float64
	MaxPrice     float64
	Sort         BikeSort
	Offset       int
	Limit        int
}

// FilterValues are the distinct attribute values over available inventory.
type FilterValues struct {
	Makes         []string
	BodyTypes     []string
	FuelTypes     []string
	Transmissions []string
	MinPrice      float64
	MaxPrice      float64
}

type Bikes interface {
	// GetByID returns a bike regardless of status.
	GetByID(ctx context.Context, id string) (domain.Bike, error)

	// List returns available bikes matching q plus the total match count.
	List(ctx context.Context, q BikeQuery) ([]domain.Bike, int, error)

	// FilterValues computes distinct values and the price range over
	// available inventory, each sorted ascending.
	FilterValues(ctx context.Context) (FilterValues, error)

	// Create inserts a new bike.
	Create(ctx context.Context, b domain.Bike) error

	// SetStatus updates the inventory status.
	SetStatus(ctx context.Context, id string, status domain.BikeStatus) error

	// SetFeatured updates the featured flag.
	SetFeatured(ctx context.Context, id string, featured bool) error

	// Delete removes a bike. Saved-bike records cascade per schema.
	Delete(ctx context.Context, id string) error

	// StatusCounts returns bike counts grouped by status.
	StatusCounts(ctx context.Context) (map[domain.BikeStatus]int, error)

	// CountFeatured returns the number of featured bikes.
	CountFeatured(ctx context.Context) (int, error)

	// CountSoldWithCompletedBooking returns the number of SOLD bikes that
	// appear among bikes with a COMPLETED test drive (dashboard conversion).
	CountSoldWithCompletedBooking(ctx context.Context) (int, error)
}

type SavedBikes interface {
	// Get returns the wishlist record for a user/bike pair.
	Get(ctx context.Context, userID, bikeID string) (domain.SavedBike, error)

	// Create inserts a wishlist record.
	Create(ctx context.Context, s domain.SavedBike) error

	// Delete removes a wishlist record.
	Delete(ctx context.Context, userID, bikeID string) error

	// ListBikes returns the user's saved bikes newest-saved first.
	ListBikes(ctx context.Context, userID string) ([]domain.Bike, error)

	// BikeIDs returns the set of bike ids the user has saved.
	BikeIDs(ctx context.Context, userID string) (map[string]bool, error)
}

// BookingDetail is a booking joined with its bike and, for admin listings,
// the booking user.
type BookingDetail struct {
	Booking domain.TestDriveBooking
	Bike    domain.Bike
	User    *domain.User
}

// BookingQuery captures admin moderation filters.
type BookingQuery struct {
	// Search matches case-insensitively across bike make/model and user
	// name/email.
	Search string
	// Status filters to a single booking status when set.
	Status domain.BookingStatus
}

type Bookings interface {
	// Create inserts a booking. A duplicate active slot surfaces as
	// ErrAlreadyExists via the partial unique index.
	Create(ctx context.Context, b domain.TestDriveBooking) error

	// GetByID returns a booking by id.
	GetByID(ctx context.Context, id string) (domain.TestDriveBooking, error)

	// ActiveSlotExists reports whether a PENDING or CONFIRMED booking holds
	// the bike/date/startTime slot.
	ActiveSlotExists(ctx context.Context, bikeID string, date time.Time, startTime string) (bool, error)

	// LatestNonCancelledForUserAndBike returns the caller's most recent
	// non-cancelled booking for a bike, or ErrNotFound.
	LatestNonCancelledForUserAndBike(ctx context.Context, userID, bikeID string) (domain.TestDriveBooking, error)

	// SetStatus persists a status change and bumps updated_at.
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) error

	// ListForUser returns the user's bookings with bike summaries, ordered
	// by booking date descending then start time ascending.
	ListForUser(ctx context.Context, userID string) ([]BookingDetail, error)

	// ListAll returns bookings matching q with bike and user summaries,
	// same ordering as ListForUser.
	ListAll(ctx context.Context, q BookingQuery) ([]BookingDetail, error)

	// StatusCounts returns booking counts grouped by status.
	StatusCounts(ctx context.Context) (map[domain.BookingStatus]int, error)
}

type Dealership interface {
	// Get returns the dealership record and its working hours ordered by
	// day of week.
	Get(ctx context.Context) (domain.DealershipInfo, []domain.WorkingHour, error)
}
