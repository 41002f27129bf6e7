package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/internal/market/store/drivers/sqlite"
	"github.com/kmrmotors/motodrive/pkg/idx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

func newHandlerStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// withUser attaches a resolved user the way ResolveUser does.
func withUser(r *http.Request, u *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKeyUser, u))
}

func TestBookTestDriveHandlerResponse(t *testing.T) {
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

	bike := domain.Bike{
		ID:        idx.New().String(),
		Make:      "Yamaha",
		Model:     "MT-07",
		Year:      2024,
		Price:     13500,
		Status:    domain.BikeAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Bikes().Create(ctx, bike))

	handler := &BookTestDriveHandler{
		BookingService: &service.BookingService{Store: st},
	}

	book := func(t *testing.T) *httptest.ResponseRecorder {
		t.Helper()
		body := `{"bikeId":"` + bike.ID + `","date":"2027-03-15","startTime":"10:00","endTime":"11:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/test-drives", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withUser(req, &user))
		return rec
	}

	t.Run("response carries the bike summary", func(t *testing.T) {
		rec := book(t)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp marketsdk.BookingResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.True(t, resp.Success)
		require.NotEmpty(t, resp.Booking.ID)
		require.Equal(t, "PENDING", resp.Booking.Status)
		require.Equal(t, "2027-03-15", resp.Booking.BookingDate)
		require.Equal(t, bike.ID, resp.Booking.Bike.ID)
		require.Equal(t, "Yamaha", resp.Booking.Bike.Make)
		require.Equal(t, "MT-07", resp.Booking.Bike.Model)
	})

	t.Run("taken slot is a conflict", func(t *testing.T) {
		rec := book(t)
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp marketsdk.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.False(t, resp.Success)
	})
}

func TestSetBookingStatusHandlerResponse(t *testing.T) {
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

	bike := domain.Bike{
		ID:        idx.New().String(),
		Make:      "Ducati",
		Model:     "Monster",
		Year:      2024,
		Price:     19800,
		Status:    domain.BikeAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Bikes().Create(ctx, bike))

	booking := domain.TestDriveBooking{
		ID:          idx.New().String(),
		BikeID:      bike.ID,
		UserID:      user.ID,
		BookingDate: time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.BookingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.Bookings().Create(ctx, booking))

	handler := &SetBookingStatusHandler{
		BookingService: &service.BookingService{Store: st},
	}

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/test-drives/"+booking.ID+"/status",
		strings.NewReader(`{"status":"CONFIRMED"}`))
	req.SetPathValue("id", booking.ID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp marketsdk.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	require.Equal(t, "CONFIRMED", resp.Booking.Status)
	require.Equal(t, bike.ID, resp.Booking.Bike.ID)
	require.Equal(t, "Ducati", resp.Booking.Bike.Make)
}
