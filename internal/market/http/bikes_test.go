package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/idx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

func TestBikesListHandlerWishlistFlags(t *testing.T) {
	t.Parallel()

	st := newHandlerStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	user := domain.User{
		ID:        idx.New().String(),
		Email:     "rider@example.com",
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Users().Create(ctx, user))

	saved := domain.Bike{
		ID:        idx.New().String(),
		Make:      "Honda",
		Model:     "CB500F",
		Year:      2023,
		Price:     7000,
		Status:    domain.BikeAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Bikes().Create(ctx, saved))

	other := domain.Bike{
		ID:        idx.New().String(),
		Make:      "Ducati",
		Model:     "Panigale V4",
		Year:      2024,
		Price:     32000,
		Status:    domain.BikeAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Bikes().Create(ctx, other))

	require.NoError(t, st.SavedBikes().Create(ctx, domain.SavedBike{
		UserID:  user.ID,
		BikeID:  saved.ID,
		SavedAt: now,
	}))

	handler := &BikesListHandler{
		CatalogService: &service.CatalogService{Store: st},
	}

	list := func(t *testing.T, u *domain.User) map[string]marketsdk.Bike {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/v1/bikes", nil)
		if u != nil {
			req = withUser(req, u)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp marketsdk.BikesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.True(t, resp.Success)

		byID := make(map[string]marketsdk.Bike, len(resp.Bikes))
		for _, b := range resp.Bikes {
			byID[b.ID] = b
		}
		return byID
	}

	t.Run("signed-in caller sees wishlist flags", func(t *testing.T) {
		bikes := list(t, &user)
		require.Len(t, bikes, 2)
		require.True(t, bikes[saved.ID].Wishlisted)
		require.False(t, bikes[other.ID].Wishlisted)
	})

	t.Run("anonymous caller sees none", func(t *testing.T) {
		bikes := list(t, nil)
		require.Len(t, bikes, 2)
		require.False(t, bikes[saved.ID].Wishlisted)
		require.False(t, bikes[other.ID].Wishlisted)
	})
}
