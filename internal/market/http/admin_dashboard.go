package http

import (
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP godoc
//
//	@Summary		Admin Dashboard
//	@Description	Aggregate bike and booking counts plus the test-drive conversion rate. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	marketsdk.DashboardResponse
//	@Failure		401	{object}	marketsdk.ErrorResponse
//	@Failure		403	{object}	marketsdk.ErrorResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.DashboardService.Stats(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to compute dashboard stats", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to compute dashboard stats")
		return
	}

	var out marketsdk.DashboardStats
	out.Bikes.Total = stats.TotalBikes
	out.Bikes.Available = stats.AvailableBikes
	out.Bikes.Sold = stats.SoldBikes
	out.Bikes.Unavailable = stats.UnavailableBikes
	out.Bikes.Featured = stats.FeaturedBikes
	out.Bookings.Total = stats.TotalBookings
	out.Bookings.Pending = stats.PendingBookings
	out.Bookings.Confirmed = stats.ConfirmedBookings
	out.Bookings.Completed = stats.CompletedBookings
	out.Bookings.Cancelled = stats.CancelledBookings
	out.Bookings.NoShow = stats.NoShowBookings
	out.ConversionRate = stats.ConversionRate

	httpx.WriteJSON(w, http.StatusOK, marketsdk.DashboardResponse{
		Success: true,
		Stats:   out,
	})
}
