package http

import (
	"errors"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Initial Admin
//	@Description	One-time designation of the first admin by email, guarded by the configured bootstrap token. Fails once any admin exists.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.BootstrapRequest	true	"Bootstrap request"
//	@Success		201		{object}	marketsdk.UserResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		409		{object}	marketsdk.ErrorResponse	"already bootstrapped"
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req marketsdk.BootstrapRequest
	if !decodeValid(w, r, &req) {
		return
	}

	admin, err := h.BootstrapService.Bootstrap(ctx, req.Token, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled):
			writeError(w, http.StatusNotFound, "bootstrap is not configured")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			writeError(w, http.StatusUnauthorized, "invalid bootstrap token")
		case errors.Is(err, service.ErrBootstrapAlready):
			writeError(w, http.StatusConflict, "an admin already exists")
		case errors.Is(err, service.ErrBootstrapInvalidEmail):
			writeError(w, http.StatusBadRequest, "invalid bootstrap email")
		default:
			slogx.FromContext(ctx).Error("bootstrap failed", "err", err)
			writeError(w, http.StatusInternalServerError, "bootstrap failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, marketsdk.UserResponse{
		Success: true,
		User:    toSDKUser(admin),
	})
}
