package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &DashboardService{Store: st}
	ctx := context.Background()

	t.Run("zero conversion with no completed bookings", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		require.Zero(t, stats.ConversionRate)
		require.Zero(t, stats.TotalBikes)
		require.Zero(t, stats.TotalBookings)
	})

	user := seedUser(t, st, "rider@example.com", domain.RoleUser)
	sold := seedBike(t, st, domain.BikeSold, func(b *domain.Bike) { b.Featured = true })
	kept := seedBike(t, st, domain.BikeAvailable)

	// Two completed test drives; exactly one of the bikes ended up sold.
	seedBooking(t, st, sold.ID, user.ID, domain.BookingCompleted)
	seedBooking(t, st, kept.ID, user.ID, domain.BookingCompleted, func(b *domain.TestDriveBooking) {
		b.StartTime = "11:00"
	})
	seedBooking(t, st, kept.ID, user.ID, domain.BookingPending, func(b *domain.TestDriveBooking) {
		b.StartTime = "12:00"
	})

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	require.Equal(t, 2, stats.TotalBikes)
	require.Equal(t, 1, stats.AvailableBikes)
	require.Equal(t, 1, stats.SoldBikes)
	require.Equal(t, 1, stats.FeaturedBikes)

	require.Equal(t, 3, stats.TotalBookings)
	require.Equal(t, 2, stats.CompletedBookings)
	require.Equal(t, 1, stats.PendingBookings)

	require.Equal(t, 50.0, stats.ConversionRate)
}
