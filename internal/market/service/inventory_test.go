package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

func TestInventory(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InventoryService{Store: st}
	ctx := context.Background()

	t.Run("add bike defaults to available", func(t *testing.T) {
		bike, err := svc.AddBike(ctx, NewBike{
			Make:  "Kawasaki",
			Model: "Z650",
			Year:  2024,
			Price: 12500,
		})
		require.NoError(t, err)
		require.Equal(t, domain.BikeAvailable, bike.Status)
		require.NotEmpty(t, bike.ID)

		got, err := st.Bikes().GetByID(ctx, bike.ID)
		require.NoError(t, err)
		require.Equal(t, "Kawasaki", got.Make)
	})

	t.Run("rejects incomplete bikes", func(t *testing.T) {
		_, err := svc.AddBike(ctx, NewBike{Make: "Kawasaki"})
		require.ErrorIs(t, err, ErrInvalidBike)
	})

	t.Run("status updates", func(t *testing.T) {
		bike := seedBike(t, st, domain.BikeAvailable)

		require.NoError(t, svc.SetBikeStatus(ctx, bike.ID, domain.BikeSold))
		got, err := st.Bikes().GetByID(ctx, bike.ID)
		require.NoError(t, err)
		require.Equal(t, domain.BikeSold, got.Status)

		require.ErrorIs(t, svc.SetBikeStatus(ctx, bike.ID, domain.BikeStatus("LOST")), ErrInvalidBikeStatus)
		require.ErrorIs(t, svc.SetBikeStatus(ctx, "missing", domain.BikeSold), ErrBikeNotFound)
	})

	t.Run("featured flag", func(t *testing.T) {
		bike := seedBike(t, st, domain.BikeAvailable)

		require.NoError(t, svc.SetFeatured(ctx, bike.ID, true))
		n, err := st.Bikes().CountFeatured(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("remove bike cascades wishlist records", func(t *testing.T) {
		user := seedUser(t, st, "rider@example.com", domain.RoleUser)
		bike := seedBike(t, st, domain.BikeAvailable)

		wl := &WishlistService{Store: st}
		_, err := wl.Toggle(ctx, user.ID, bike.ID)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveBike(ctx, bike.ID))

		saved, err := st.SavedBikes().ListBikes(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, saved)

		require.ErrorIs(t, svc.RemoveBike(ctx, bike.ID), ErrBikeNotFound)
	})
}
