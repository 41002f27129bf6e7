package domain

import "time"

// BikeStatus is the closed set of inventory states. Only AVAILABLE bikes
// appear in catalog listings and filter computations.
type BikeStatus string

const (
	BikeAvailable   BikeStatus = "AVAILABLE"
	BikeUnavailable BikeStatus = "UNAVAILABLE"
	BikeSold        BikeStatus = "SOLD"
)

// Valid reports whether s is one of the enumerated inventory states.
func (s BikeStatus) Valid() bool {
	switch s {
	case BikeAvailable, BikeUnavailable, BikeSold:
		return true
	}
	return false
}

type Bike struct {
	ID           string
	Make         string
	Model        string
	Year         int
	Price        float64
	Mileage      int
	BodyType     string
	FuelType     string
	Transmission string
	Color        string
	Status       BikeStatus
	Featured     bool
	Images       []string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SavedBike is the wishlist join record, unique per user/bike pair.
type SavedBike struct {
	UserID  string
	BikeID  string
	SavedAt time.Time
}
