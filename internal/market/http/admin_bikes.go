package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type CreateBikeHandler struct {
	InventoryService *service.InventoryService
}

// ServeHTTP godoc
//
//	@Summary		Add Bike
//	@Description	List a new bike in the catalog with status AVAILABLE. Admin only.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.CreateBikeRequest	true	"Bike details"
//	@Success		201		{object}	marketsdk.BikeResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		403		{object}	marketsdk.ErrorResponse
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/bikes [post].
func (h *CreateBikeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req marketsdk.CreateBikeRequest
	if !decodeValid(w, r, &req) {
		return
	}

	bike, err := h.InventoryService.AddBike(ctx, service.NewBike{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		BodyType:     req.BodyType,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Color:        req.Color,
		Featured:     req.Featured,
		Images:       req.Images,
		Description:  req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidBike) {
			writeError(w, http.StatusBadRequest, "invalid bike")
			return
		}
		slogx.FromContext(ctx).Error("failed to add bike", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to add bike")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, marketsdk.BikeResponse{
		Success: true,
		Bike:    toSDKBike(bike),
	})
}

type UpdateBikeHandler struct {
	InventoryService *service.InventoryService
}

// ServeHTTP godoc
//
//	@Summary		Update Bike
//	@Description	Change a bike's inventory status or featured flag. Omitted fields stay unchanged. Admin only.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Bike ID"
//	@Param			request	body		marketsdk.UpdateBikeRequest	true	"Fields to update"
//	@Success		200		{object}	marketsdk.MessageResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		403		{object}	marketsdk.ErrorResponse
//	@Failure		404		{object}	marketsdk.ErrorResponse
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/bikes/{id} [patch].
func (h *UpdateBikeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bikeID := r.PathValue("id")

	var req marketsdk.UpdateBikeRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if req.Status == nil && req.Featured == nil {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	if req.Status != nil {
		if err := h.InventoryService.SetBikeStatus(ctx, bikeID, domain.BikeStatus(*req.Status)); err != nil {
			h.writeUpdateError(ctx, w, err)
			return
		}
	}
	if req.Featured != nil {
		if err := h.InventoryService.SetFeatured(ctx, bikeID, *req.Featured); err != nil {
			h.writeUpdateError(ctx, w, err)
			return
		}
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.MessageResponse{
		Success: true,
		Message: "bike updated",
	})
}

func (h *UpdateBikeHandler) writeUpdateError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBikeNotFound):
		writeError(w, http.StatusNotFound, "bike not found")
	case errors.Is(err, service.ErrInvalidBikeStatus):
		writeError(w, http.StatusBadRequest, "invalid bike status")
	default:
		slogx.FromContext(ctx).Error("failed to update bike", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to update bike")
	}
}

type DeleteBikeHandler struct {
	InventoryService *service.InventoryService
}

// ServeHTTP godoc
//
//	@Summary		Remove Bike
//	@Description	Delete a bike from the catalog. Saved-bike records cascade; bookings retain their history. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string	true	"Bike ID"
//	@Success		200	{object}	marketsdk.MessageResponse
//	@Failure		401	{object}	marketsdk.ErrorResponse
//	@Failure		403	{object}	marketsdk.ErrorResponse
//	@Failure		404	{object}	marketsdk.ErrorResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/bikes/{id} [delete].
func (h *DeleteBikeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.InventoryService.RemoveBike(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrBikeNotFound) {
			writeError(w, http.StatusNotFound, "bike not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to remove bike", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to remove bike")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.MessageResponse{
		Success: true,
		Message: "bike removed",
	})
}
