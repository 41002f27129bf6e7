package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
)

func TestCatalogListAvailableOnly(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &CatalogService{Store: st}
	ctx := context.Background()

	available := seedBike(t, st, domain.BikeAvailable)
	seedBike(t, st, domain.BikeSold)
	seedBike(t, st, domain.BikeUnavailable)

	page, err := svc.List(ctx, ListCriteria{}, "")
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Len(t, page.Bikes, 1)
	require.Equal(t, available.ID, page.Bikes[0].ID)
}

func TestCatalogFiltersExcludeNonAvailable(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &CatalogService{Store: st}
	ctx := context.Background()

	seedBike(t, st, domain.BikeAvailable, func(b *domain.Bike) {
		b.Make = "Honda"
		b.Price = 8000
	})
	seedBike(t, st, domain.BikeSold, func(b *domain.Bike) {
		b.Make = "Ducati"
		b.Price = 25000
	})

	fv, err := svc.Filters(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Honda"}, fv.Makes)
	require.Equal(t, 8000.0, fv.MinPrice)
	require.Equal(t, 8000.0, fv.MaxPrice)
}

func TestCatalogListFiltersAndSorts(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &CatalogService{Store: st}
	ctx := context.Background()

	cheap := seedBike(t, st, domain.BikeAvailable, func(b *domain.Bike) {
		b.Make = "Honda"
		b.Model = "CB500F"
		b.Price = 7000
	})
	dear := seedBike(t, st, domain.BikeAvailable, func(b *domain.Bike) {
		b.Make = "Ducati"
		b.Model = "Panigale V4"
		b.Price = 32000
	})

	t.Run("case-insensitive make filter", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{Make: "honda"}, "")
		require.NoError(t, err)
		require.Len(t, page.Bikes, 1)
		require.Equal(t, cheap.ID, page.Bikes[0].ID)
	})

	t.Run("substring search over model", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{Search: "panigale"}, "")
		require.NoError(t, err)
		require.Len(t, page.Bikes, 1)
		require.Equal(t, dear.ID, page.Bikes[0].ID)
	})

	t.Run("inclusive price range", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{MinPrice: 7000, MaxPrice: 7000}, "")
		require.NoError(t, err)
		require.Len(t, page.Bikes, 1)
		require.Equal(t, cheap.ID, page.Bikes[0].ID)
	})

	t.Run("price ascending", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{Sort: store.SortPriceAsc}, "")
		require.NoError(t, err)
		require.Len(t, page.Bikes, 2)
		require.Equal(t, cheap.ID, page.Bikes[0].ID)
		require.Equal(t, dear.ID, page.Bikes[1].ID)
	})

	t.Run("price descending", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{Sort: store.SortPriceDesc}, "")
		require.NoError(t, err)
		require.Len(t, page.Bikes, 2)
		require.Equal(t, dear.ID, page.Bikes[0].ID)
	})
}

func TestCatalogListWishlistFlags(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &CatalogService{Store: st}
	ctx := context.Background()

	user := seedUser(t, st, "rider@example.com", domain.RoleUser)
	saved := seedBike(t, st, domain.BikeAvailable)
	other := seedBike(t, st, domain.BikeAvailable)

	wl := &WishlistService{Store: st}
	on, err := wl.Toggle(ctx, user.ID, saved.ID)
	require.NoError(t, err)
	require.True(t, on)

	t.Run("signed-in caller gets saved ids", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{}, user.ID)
		require.NoError(t, err)
		require.Len(t, page.Bikes, 2)
		require.True(t, page.Saved[saved.ID])
		require.False(t, page.Saved[other.ID])
	})

	t.Run("anonymous caller gets none", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{}, "")
		require.NoError(t, err)
		require.Nil(t, page.Saved)
	})
}

func TestCatalogPagination(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &CatalogService{Store: st}
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		seedBike(t, st, domain.BikeAvailable, func(b *domain.Bike) {
			b.Model = fmt.Sprintf("Model-%02d", i)
		})
	}

	page, err := svc.List(ctx, ListCriteria{Page: 2, Limit: 6}, "")
	require.NoError(t, err)
	require.Len(t, page.Bikes, 6)
	require.Equal(t, 13, page.Total)
	require.Equal(t, 3, page.Pages)
	require.Equal(t, 2, page.Page)

	t.Run("defaults applied", func(t *testing.T) {
		page, err := svc.List(ctx, ListCriteria{}, "")
		require.NoError(t, err)
		require.Equal(t, 1, page.Page)
		require.Equal(t, 6, page.Limit)
		require.Len(t, page.Bikes, 6)
	})
}

func TestCatalogGetByID(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &CatalogService{Store: st}
	ctx := context.Background()

	user := seedUser(t, st, "rider@example.com", domain.RoleUser)
	bike := seedBike(t, st, domain.BikeAvailable)

	t.Run("unknown bike", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "missing", "")
		require.ErrorIs(t, err, ErrBikeNotFound)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		detail, err := svc.GetByID(ctx, bike.ID, "")
		require.NoError(t, err)
		require.Equal(t, bike.ID, detail.Bike.ID)
		require.False(t, detail.Wishlisted)
		require.Nil(t, detail.TestDrive)
		require.NotEmpty(t, detail.Dealership.Name)
		require.Len(t, detail.Hours, 7)
	})

	t.Run("wishlisted and booked for signed-in caller", func(t *testing.T) {
		wl := &WishlistService{Store: st}
		saved, err := wl.Toggle(ctx, user.ID, bike.ID)
		require.NoError(t, err)
		require.True(t, saved)

		booking := seedBooking(t, st, bike.ID, user.ID, domain.BookingPending)

		detail, err := svc.GetByID(ctx, bike.ID, user.ID)
		require.NoError(t, err)
		require.True(t, detail.Wishlisted)
		require.NotNil(t, detail.TestDrive)
		require.Equal(t, booking.ID, detail.TestDrive.ID)
	})

	t.Run("cancelled booking not surfaced", func(t *testing.T) {
		other := seedBike(t, st, domain.BikeAvailable)
		seedBooking(t, st, other.ID, user.ID, domain.BookingCancelled)

		detail, err := svc.GetByID(ctx, other.ID, user.ID)
		require.NoError(t, err)
		require.Nil(t, detail.TestDrive)
	})
}
