package service

import (
	"context"
	"math"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
)

// DashboardStats is the admin overview aggregate.
type DashboardStats struct {
	TotalBikes       int
	AvailableBikes   int
	SoldBikes        int
	UnavailableBikes int
	FeaturedBikes    int

	TotalBookings     int
	PendingBookings   int
	ConfirmedBookings int
	CompletedBookings int
	CancelledBookings int
	NoShowBookings    int

	// ConversionRate is sold bikes with a completed test drive over
	// completed bookings, as a percentage with two decimals.
	ConversionRate float64
}

// DashboardService computes read-only aggregates for the admin overview.
type DashboardService struct {
	Store store.Store
}

func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	bikeCounts, err := s.Store.Bikes().StatusCounts(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.AvailableBikes = bikeCounts[domain.BikeAvailable]
	stats.SoldBikes = bikeCounts[domain.BikeSold]
	stats.UnavailableBikes = bikeCounts[domain.BikeUnavailable]
	stats.TotalBikes = stats.AvailableBikes + stats.SoldBikes + stats.UnavailableBikes

	stats.FeaturedBikes, err = s.Store.Bikes().CountFeatured(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	bookingCounts, err := s.Store.Bookings().StatusCounts(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.PendingBookings = bookingCounts[domain.BookingPending]
	stats.ConfirmedBookings = bookingCounts[domain.BookingConfirmed]
	stats.CompletedBookings = bookingCounts[domain.BookingCompleted]
	stats.CancelledBookings = bookingCounts[domain.BookingCancelled]
	stats.NoShowBookings = bookingCounts[domain.BookingNoShow]
	stats.TotalBookings = stats.PendingBookings + stats.ConfirmedBookings +
		stats.CompletedBookings + stats.CancelledBookings + stats.NoShowBookings

	if stats.CompletedBookings > 0 {
		sold, err := s.Store.Bikes().CountSoldWithCompletedBooking(ctx)
		if err != nil {
			return DashboardStats{}, err
		}
		rate := float64(sold) / float64(stats.CompletedBookings) * 100
		stats.ConversionRate = math.Round(rate*100) / 100
	}

	return stats, nil
}
