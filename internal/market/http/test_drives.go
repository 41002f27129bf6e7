package http

import (
	"errors"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type BookTestDriveHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		Book Test Drive
//	@Description	Reserve a test-drive slot on an available bike. A slot is a bike + date + start time; at most one PENDING or CONFIRMED booking may hold it.
//	@Tags			Test Drives
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.BookTestDriveRequest	true	"Booking request"
//	@Success		201		{object}	marketsdk.BookingResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		404		{object}	marketsdk.ErrorResponse
//	@Failure		409		{object}	marketsdk.ErrorResponse	"slot already booked or bike unavailable"
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/test-drives [post].
func (h *BookTestDriveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	var req marketsdk.BookTestDriveRequest
	if !decodeValid(w, r, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}

	detail, err := h.BookingService.Book(ctx, user.ID, service.BookRequest{
		BikeID:    req.BikeID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBikeNotFound):
			writeError(w, http.StatusNotFound, "bike not found")
		case errors.Is(err, service.ErrBikeUnavailable):
			writeError(w, http.StatusConflict, "bike is not available for test drives")
		case errors.Is(err, service.ErrSlotTaken):
			writeError(w, http.StatusConflict, "slot already has an active booking")
		default:
			slogx.FromContext(ctx).Error("failed to book test drive", "err", err)
			writeError(w, http.StatusInternalServerError, "failed to book test drive")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, marketsdk.BookingResponse{
		Success: true,
		Booking: toSDKBooking(detail),
	})
}

type MyTestDrivesHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		List My Test Drives
//	@Description	The authenticated caller's bookings with bike summaries, booking date descending then start time ascending.
//	@Tags			Test Drives
//	@Produce		json
//	@Success		200	{object}	marketsdk.BookingsResponse
//	@Failure		401	{object}	marketsdk.ErrorResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/test-drives [get].
func (h *MyTestDrivesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	details, err := h.BookingService.ListForUser(ctx, user.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list test drives", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list test drives")
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

type CancelTestDriveHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		Cancel Test Drive
//	@Description	Cancel a booking. The owner may cancel their own booking; admins may cancel any. Completed or already cancelled bookings cannot be cancelled.
//	@Tags			Test Drives
//	@Produce		json
//	@Param			id	path		string	true	"Booking ID"
//	@Success		200	{object}	marketsdk.MessageResponse
//	@Failure		401	{object}	marketsdk.ErrorResponse
//	@Failure		403	{object}	marketsdk.ErrorResponse
//	@Failure		404	{object}	marketsdk.ErrorResponse
//	@Failure		409	{object}	marketsdk.ErrorResponse	"booking already terminal"
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/test-drives/{id}/cancel [post].
func (h *CancelTestDriveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	err := h.BookingService.Cancel(ctx, r.PathValue("id"), *user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			writeError(w, http.StatusNotFound, "booking not found")
		case errors.Is(err, service.ErrBookingNotYours):
			writeError(w, http.StatusForbidden, "booking belongs to another user")
		case errors.Is(err, service.ErrBookingTerminal):
			writeError(w, http.StatusConflict, "booking is already completed or cancelled")
		default:
			slogx.FromContext(ctx).Error("failed to cancel booking", "err", err)
			writeError(w, http.StatusInternalServerError, "failed to cancel booking")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.MessageResponse{
		Success: true,
		Message: "booking cancelled",
	})
}
