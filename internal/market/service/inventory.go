package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/idx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

var (
	ErrInvalidBike       = errors.New("invalid bike")
	ErrInvalidBikeStatus = errors.New("invalid bike status")
)

// InventoryService is the admin write side of the catalog.
type InventoryService struct {
	Store store.Store
}

// NewBike carries the fields an admin supplies when listing a bike.
type NewBike struct {
	Make         string
	Model        string
	Year         int
	Price        float64
	Mileage      int
	BodyType     string
	FuelType     string
	Transmission string
	Color        string
	Featured     bool
	Images       []string
	Description  string
}

// AddBike creates an AVAILABLE bike.
func (s *InventoryService) AddBike(ctx context.Context, n NewBike) (domain.Bike, error) {
	log := slogx.FromContext(ctx)

	n.Make = strings.TrimSpace(n.Make)
	n.Model = strings.TrimSpace(n.Model)
	if n.Make == "" || n.Model == "" || n.Year <= 0 || n.Price <= 0 {
		return domain.Bike{}, ErrInvalidBike
	}

	now := time.Now().UTC()
	bike := domain.Bike{
		ID:           idx.New().String(),
		Make:         n.Make,
		Model:        n.Model,
		Year:         n.Year,
		Price:        n.Price,
		Mileage:      n.Mileage,
		BodyType:     n.BodyType,
		FuelType:     n.FuelType,
		Transmission: n.Transmission,
		Color:        n.Color,
		Status:       domain.BikeAvailable,
		Featured:     n.Featured,
		Images:       n.Images,
		Description:  n.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Bikes().Create(ctx, bike); err != nil {
		return domain.Bike{}, err
	}

	log.Info("bike added",
		slog.String("bike_id", bike.ID),
		slog.String("make", bike.Make),
		slog.String("model", bike.Model),
	)
	return bike, nil
}

// SetBikeStatus updates a bike's inventory status.
func (s *InventoryService) SetBikeStatus(ctx context.Context, bikeID string, status domain.BikeStatus) error {
	if !status.Valid() {
		return ErrInvalidBikeStatus
	}
	if err := s.Store.Bikes().SetStatus(ctx, bikeID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBikeNotFound
		}
		return err
	}
	return nil
}

// SetFeatured updates a bike's featured flag.
func (s *InventoryService) SetFeatured(ctx context.Context, bikeID string, featured bool) error {
	if err := s.Store.Bikes().SetFeatured(ctx, bikeID, featured); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBikeNotFound
		}
		return err
	}
	return nil
}

// RemoveBike deletes a bike. Wishlist records cascade; bookings keep their
// history so deletion fails while bookings reference the bike.
func (s *InventoryService) RemoveBike(ctx context.Context, bikeID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Bikes().Delete(ctx, bikeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBikeNotFound
		}
		return err
	}

	log.Info("bike removed", slog.String("bike_id", bikeID))
	return nil
}
