package domain

import "time"

// BookingStatus is the closed set of test-drive states.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingNoShow    BookingStatus = "NO_SHOW"
)

// Valid reports whether s is one of the five enumerated states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

// Active reports whether s occupies its slot for conflict purposes.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Terminal reports whether no further user-initiated transition is
// permitted from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// bookingTransitions is the allowed source -> target pairs. NO_SHOW is an
// admin-assigned outcome with no outgoing edges; a rider can no-show a
// booking whether or not it was ever confirmed.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled, BookingNoShow},
	BookingConfirmed: {BookingCompleted, BookingCancelled, BookingNoShow},
}

// CanTransitionTo reports whether moving from s to next is legal under the
// strict transition table.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TestDriveBooking is a reservation for a bike and timeslot. Bookings are
// never hard-deleted; cancellation is a status transition.
type TestDriveBooking struct {
	ID          string
	BikeID      string
	UserID      string
	BookingDate time.Time // date component only
	StartTime   string    // "HH:MM"
	EndTime     string    // "HH:MM"
	Status      BookingStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
