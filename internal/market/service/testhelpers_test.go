package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/internal/market/store/drivers/sqlite"
	"github.com/kmrmotors/motodrive/pkg/idx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func seedUser(t *testing.T, st store.Store, email string, role domain.Role) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:         idx.New().String(),
		ExternalID: "ext-" + idx.New().String(),
		Email:      email,
		Name:       "Test User",
		Role:       role,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, st.Users().Create(context.Background(), u))
	return u
}

func seedBike(t *testing.T, st store.Store, status domain.BikeStatus, opts ...func(*domain.Bike)) domain.Bike {
	t.Helper()

	now := time.Now().UTC()
	b := domain.Bike{
		ID:           idx.New().String(),
		Make:         "Yamaha",
		Model:        "MT-07",
		Year:         2023,
		Price:        11000,
		Mileage:      1200,
		BodyType:     "Naked",
		FuelType:     "Petrol",
		Transmission: "Manual",
		Color:        "Black",
		Status:       status,
		Images:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	require.NoError(t, st.Bikes().Create(context.Background(), b))
	return b
}

func seedBooking(t *testing.T, st store.Store, bikeID, userID string, status domain.BookingStatus, opts ...func(*domain.TestDriveBooking)) domain.TestDriveBooking {
	t.Helper()

	now := time.Now().UTC()
	b := domain.TestDriveBooking{
		ID:          idx.New().String(),
		BikeID:      bikeID,
		UserID:      userID,
		BookingDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "10:30",
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	require.NoError(t, st.Bookings().Create(context.Background(), b))
	return b
}
