package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/idx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

var (
	ErrBikeUnavailable      = errors.New("bike is not available for test drives")
	ErrSlotTaken            = errors.New("slot already has an active booking")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingNotYours      = errors.New("booking belongs to another user")
	ErrBookingTerminal      = errors.New("booking is already in a terminal state")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrIllegalTransition    = errors.New("illegal booking status transition")
)

// BookingService manages test-drive reservations.
type BookingService struct {
	Store store.Store

	// StrictTransitions makes SetStatus enforce the full transition table.
	// When false, admins may assign any enumerated status from any state.
	StrictTransitions bool
}

// BookRequest carries the caller's slot choice. Date is truncated to the
// calendar day; StartTime/EndTime are "HH:MM" strings.
type BookRequest struct {
	BikeID    string
	Date      time.Time
	StartTime string
	EndTime   string
	Notes     string
}

// Book reserves a slot for userID and returns the booking with its bike
// summary. The slot conflict predicate is bike, date and start time against
// PENDING or CONFIRMED bookings only; end time and cross-bike overlap are
// deliberately not part of it.
func (s *BookingService) Book(ctx context.Context, userID string, req BookRequest) (store.BookingDetail, error) {
	log := slogx.FromContext(ctx)

	bike, err := s.Store.Bikes().GetByID(ctx, req.BikeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.BookingDetail{}, ErrBikeNotFound
		}
		return store.BookingDetail{}, err
	}
	if bike.Status != domain.BikeAvailable {
		return store.BookingDetail{}, ErrBikeUnavailable
	}

	now := time.Now().UTC()
	booking := domain.TestDriveBooking{
		ID:          idx.New().String(),
		BikeID:      req.BikeID,
		UserID:      userID,
		BookingDate: normalizeDate(req.Date),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      domain.BookingPending,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The existence check gives a clean error for the common case; the
	// partial unique index on active slots closes the race when two
	// requests pass the check concurrently.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		taken, err := tx.Bookings().ActiveSlotExists(ctx, booking.BikeID, booking.BookingDate, booking.StartTime)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
		return tx.Bookings().Create(ctx, booking)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			err = ErrSlotTaken
		}
		if errors.Is(err, ErrSlotTaken) {
			log.Info("booking slot conflict",
				slog.String("bike_id", booking.BikeID),
				slog.Time("date", booking.BookingDate),
				slog.String("start_time", booking.StartTime),
			)
		}
		return store.BookingDetail{}, err
	}

	log.Info("test drive booked",
		slog.String("booking_id", booking.ID),
		slog.String("bike_id", booking.BikeID),
	)
	return store.BookingDetail{Booking: booking, Bike: bike}, nil
}

// Cancel transitions a booking to CANCELLED. The owner may cancel their own
// booking; admins may cancel any. Terminal bookings stay untouched.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, actor domain.User) error {
	log := slogx.FromContext(ctx)

	booking, err := s.Store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if booking.UserID != actor.ID && !actor.IsAdmin() {
		return ErrBookingNotYours
	}
	if booking.Status.Terminal() {
		return ErrBookingTerminal
	}

	if err := s.Store.Bookings().SetStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return err
	}

	log.Info("booking cancelled",
		slog.String("booking_id", bookingID),
		slog.String("by", actor.ID),
	)
	return nil
}

// SetStatus assigns an admin-chosen status and returns the updated booking
// with its bike summary. Enum membership is always enforced; transition
// legality only under StrictTransitions.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (store.BookingDetail, error) {
	if !status.Valid() {
		return store.BookingDetail{}, ErrInvalidBookingStatus
	}

	booking, err := s.Store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.BookingDetail{}, ErrBookingNotFound
		}
		return store.BookingDetail{}, err
	}

	if s.StrictTransitions && status != booking.Status && !booking.Status.CanTransitionTo(status) {
		return store.BookingDetail{}, ErrIllegalTransition
	}

	if err := s.Store.Bookings().SetStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Re-activating into an occupied slot trips the unique index.
			return store.BookingDetail{}, ErrSlotTaken
		}
		return store.BookingDetail{}, err
	}

	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()

	bike, err := s.Store.Bikes().GetByID(ctx, booking.BikeID)
	if err != nil {
		return store.BookingDetail{}, err
	}
	return store.BookingDetail{Booking: booking, Bike: bike}, nil
}

// ListForUser returns the caller's bookings with bike summaries.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]store.BookingDetail, error) {
	return s.Store.Bookings().ListForUser(ctx, userID)
}

// ListForAdmin returns all bookings matching the moderation filters.
func (s *BookingService) ListForAdmin(ctx context.Context, search string, status domain.BookingStatus) ([]store.BookingDetail, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidBookingStatus
	}
	return s.Store.Bookings().ListAll(ctx, store.BookingQuery{Search: search, Status: status})
}

// normalizeDate strips the time-of-day so slot equality is exact.
func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
