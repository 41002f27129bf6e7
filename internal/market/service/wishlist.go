package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

// WishlistService flips per-user bike saves.
type WishlistService struct {
	Store store.Store
}

// Toggle flips the save state for userID/bikeID against the persisted
// record and reports whether the bike is saved afterwards. The flip is
// existence-checked, not a blind insert, so repeated calls alternate.
func (s *WishlistService) Toggle(ctx context.Context, userID, bikeID string) (saved bool, err error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Bikes().GetByID(ctx, bikeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrBikeNotFound
		}
		return false, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.SavedBikes().Get(ctx, userID, bikeID)
		switch {
		case err == nil:
			saved = false
			return tx.SavedBikes().Delete(ctx, userID, bikeID)

		case errors.Is(err, store.ErrNotFound):
			saved = true
			return tx.SavedBikes().Create(ctx, domain.SavedBike{
				UserID:  userID,
				BikeID:  bikeID,
				SavedAt: time.Now().UTC(),
			})

		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}

	log.Debug("wishlist toggled",
		slog.String("bike_id", bikeID),
		slog.Bool("saved", saved),
	)
	return saved, nil
}
