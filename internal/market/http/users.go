package http

import (
	"errors"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current User
//	@Description	The caller's directory record, provisioned on first sight. An invite token in the X-Invite-Token header is redeemed during resolution.
//	@Tags			Users
//	@Produce		json
//	@Param			X-Invite-Token	header		string	false	"Admin invite token"
//	@Success		200				{object}	marketsdk.UserResponse
//	@Failure		401				{object}	marketsdk.ErrorResponse
//	@Failure		500				{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	httpx.WriteJSON(w, http.StatusOK, marketsdk.UserResponse{
		Success: true,
		User:    toSDKUser(*user),
	})
}

type OnboardingHandler struct {
	DirectoryService *service.DirectoryService
}

// ServeHTTP godoc
//
//	@Summary		Complete Onboarding
//	@Description	Record the caller's contact details after first sign-in.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.OnboardingRequest	true	"Contact details"
//	@Success		200		{object}	marketsdk.UserResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users/onboarding [post].
func (h *OnboardingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	var req marketsdk.OnboardingRequest
	if !decodeValid(w, r, &req) {
		return
	}

	updated, err := h.DirectoryService.CompleteOnboarding(ctx, user.ID, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to complete onboarding", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to complete onboarding")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.UserResponse{
		Success: true,
		User:    toSDKUser(updated),
	})
}
