package http

import (
	"errors"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type AdminTestDrivesHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		List All Test Drives
//	@Description	All bookings with bike and user summaries, optionally filtered by search text and status. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Param			search	query		string	false	"Substring match over bike make/model and user name/email"
//	@Param			status	query		string	false	"PENDING | CONFIRMED | COMPLETED | CANCELLED | NO_SHOW"
//	@Success		200		{object}	marketsdk.BookingsResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		403		{object}	marketsdk.ErrorResponse
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/test-drives [get].
func (h *AdminTestDrivesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	details, err := h.BookingService.ListForAdmin(ctx, q.Get("search"), domain.BookingStatus(q.Get("status")))
	if err != nil {
		if errors.Is(err, service.ErrInvalidBookingStatus) {
			writeError(w, http.StatusBadRequest, "invalid booking status")
			return
		}
		slogx.FromContext(ctx).Error("failed to list bookings", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	bookings := make([]marketsdk.Booking, 0, len(details))
	for _, d := range details {
		bookings = append(bookings, toSDKBooking(d))
	}
	httpx.WriteJSON(w, http.StatusOK, marketsdk.BookingsResponse{
		Success:  true,
		Bookings: bookings,
	})
}

type SetBookingStatusHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		Set Test Drive Status
//	@Description	Assign a booking status. Enum membership is always enforced; the full transition table only in strict mode. Admin only.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Booking ID"
//	@Param			request	body		marketsdk.SetBookingStatusRequest	true	"New status"
//	@Success		200		{object}	marketsdk.BookingResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		403		{object}	marketsdk.ErrorResponse
//	@Failure		404		{object}	marketsdk.ErrorResponse
//	@Failure		409		{object}	marketsdk.ErrorResponse	"illegal transition or slot conflict"
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/test-drives/{id}/status [put].
func (h *SetBookingStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req marketsdk.SetBookingStatusRequest
	if !decodeValid(w, r, &req) {
		return
	}

	detail, err := h.BookingService.SetStatus(ctx, r.PathValue("id"), domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			writeError(w, http.StatusNotFound, "booking not found")
		case errors.Is(err, service.ErrInvalidBookingStatus):
			writeError(w, http.StatusBadRequest, "invalid booking status")
		case errors.Is(err, service.ErrIllegalTransition):
			writeError(w, http.StatusConflict, "illegal status transition")
		case errors.Is(err, service.ErrSlotTaken):
			writeError(w, http.StatusConflict, "slot already has an active booking")
		default:
			slogx.FromContext(ctx).Error("failed to update booking status", "err", err)
			writeError(w, http.StatusInternalServerError, "failed to update booking status")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.BookingResponse{
		Success: true,
		Booking: toSDKBooking(detail),
	})
}
