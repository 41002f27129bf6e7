package http

import (
	"errors"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type ToggleSaveHandler struct {
	WishlistService *service.WishlistService
}

// ServeHTTP godoc
//
//	@Summary		Toggle Saved Bike
//	@Description	Flip the wishlist state of a bike for the authenticated caller. Saved bikes are unsaved and vice versa.
//	@Tags			Wishlist
//	@Produce		json
//	@Param			id	path		string	true	"Bike ID"
//	@Success		200	{object}	marketsdk.ToggleSaveResponse
//	@Failure		401	{object}	marketsdk.ErrorResponse
//	@Failure		404	{object}	marketsdk.ErrorResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/bikes/{id}/save [post].
func (h *ToggleSaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	saved, err := h.WishlistService.Toggle(ctx, user.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrBikeNotFound) {
			writeError(w, http.StatusNotFound, "bike not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to toggle saved bike", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to toggle saved bike")
		return
	}

	msg := "bike removed from saved list"
	if saved {
		msg = "bike saved"
	}
	httpx.WriteJSON(w, http.StatusOK, marketsdk.ToggleSaveResponse{
		Success: true,
		Saved:   saved,
		Message: msg,
	})
}

type SavedBikesHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		List Saved Bikes
//	@Description	The authenticated caller's wishlist, newest-saved first.
//	@Tags			Wishlist
//	@Produce		json
//	@Success		200	{object}	marketsdk.SavedBikesResponse
//	@Failure		401	{object}	marketsdk.ErrorResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/saved-bikes [get].
func (h *SavedBikesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	bikes, err := h.CatalogService.SavedBikes(ctx, user.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list saved bikes", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list saved bikes")
		return
	}

	out := toSDKBikes(bikes)
	for i := range out {
		out[i].Wishlisted = true
	}
	httpx.WriteJSON(w, http.StatusOK, marketsdk.SavedBikesResponse{
		Success: true,
		Bikes:   out,
	})
}
