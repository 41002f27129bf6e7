package service

import (
	"context"
	"errors"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
)

var ErrBikeNotFound = errors.New("bike not found")

const (
	defaultPage  = 1
	defaultLimit = 6
	maxLimit     = 50
)

// ListCriteria is the catalog listing request after HTTP decoding.
type ListCriteria struct {
	Search       string
	Make         string
	BodyType     string
	FuelType     string
	Transmission string
	MinPrice     float64
	MaxPrice     float64
	Sort         store.BikeSort
	Page         int
	Limit        int
}

// BikePage is one page of catalog results plus pagination metadata. Saved
// holds the caller's wishlisted bike ids and is only populated for
// authenticated callers.
type BikePage struct {
	Bikes []domain.Bike
	Saved map[string]bool
	Total int
	Page  int
	Limit int
	Pages int
}

// BikeDetail is the full single-bike view. Wishlisted and TestDrive are only
// populated for authenticated callers.
type BikeDetail struct {
	Bike       domain.Bike
	Wishlisted bool
	TestDrive  *domain.TestDriveBooking
	Dealership domain.DealershipInfo
	Hours      []domain.WorkingHour
}

// CatalogService serves the public read side of the bike inventory. Every
// listing query carries a hard AVAILABLE filter; sold and hidden stock are
// only reachable by id.
type CatalogService struct {
	Store store.Store
}

// Filters returns the distinct attribute values and price range over
// available inventory, for building the catalog filter UI.
func (s *CatalogService) Filters(ctx context.Context) (store.FilterValues, error) {
	return s.Store.Bikes().FilterValues(ctx)
}

// List returns one page of available bikes matching c. userID may be empty
// for anonymous callers, in which case no wishlist flags are resolved.
func (s *CatalogService) List(ctx context.Context, c ListCriteria, userID string) (BikePage, error) {
	if c.Page < 1 {
		c.Page = defaultPage
	}
	if c.Limit < 1 {
		c.Limit = defaultLimit
	}
	if c.Limit > maxLimit {
		c.Limit = maxLimit
	}

	bikes, total, err := s.Store.Bikes().List(ctx, store.BikeQuery{
		Search:       c.Search,
		Make:         c.Make,
		BodyType:     c.BodyType,
		FuelType:     c.FuelType,
		Transmission: c.Transmission,
		MinPrice:     c.MinPrice,
		MaxPrice:     c.MaxPrice,
		Sort:         c.Sort,
		Offset:       (c.Page - 1) * c.Limit,
		Limit:        c.Limit,
	})
	if err != nil {
		return BikePage{}, err
	}

	var saved map[string]bool
	if userID != "" && len(bikes) > 0 {
		saved, err = s.Store.SavedBikes().BikeIDs(ctx, userID)
		if err != nil {
			return BikePage{}, err
		}
	}

	pages := (total + c.Limit - 1) / c.Limit
	return BikePage{
		Bikes: bikes,
		Saved: saved,
		Total: total,
		Page:  c.Page,
		Limit: c.Limit,
		Pages: pages,
	}, nil
}

// GetByID returns the bike detail view. userID may be empty for anonymous
// callers, in which case the wishlist flag and test drive are omitted.
func (s *CatalogService) GetByID(ctx context.Context, bikeID, userID string) (BikeDetail, error) {
	bike, err := s.Store.Bikes().GetByID(ctx, bikeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return BikeDetail{}, ErrBikeNotFound
		}
		return BikeDetail{}, err
	}

	detail := BikeDetail{Bike: bike}

	if userID != "" {
		_, err := s.Store.SavedBikes().Get(ctx, userID, bikeID)
		switch {
		case err == nil:
			detail.Wishlisted = true
		case errors.Is(err, store.ErrNotFound):
		default:
			return BikeDetail{}, err
		}

		booking, err := s.Store.Bookings().LatestNonCancelledForUserAndBike(ctx, userID, bikeID)
		switch {
		case err == nil:
			detail.TestDrive = &booking
		case errors.Is(err, store.ErrNotFound):
		default:
			return BikeDetail{}, err
		}
	}

	info, hours, err := s.Store.Dealership().Get(ctx)
	switch {
	case err == nil:
		detail.Dealership = info
		detail.Hours = hours
	case errors.Is(err, store.ErrNotFound):
		// Unseeded database; the detail view still renders.
	default:
		return BikeDetail{}, err
	}

	return detail, nil
}

// SavedBikes returns the caller's wishlist, newest-saved first.
func (s *CatalogService) SavedBikes(ctx context.Context, userID string) ([]domain.Bike, error) {
	return s.Store.SavedBikes().ListBikes(ctx, userID)
}
