package http

import (
	"errors"
	"net/http"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type CreateInviteHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Create Admin Invite
//	@Description	Mint a single-use invite that grants the admin role to the given email, valid for 24 hours. The raw token appears only in the returned link. Admin only.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.CreateInviteRequest	true	"Invite request"
//	@Success		201		{object}	marketsdk.InviteLinkResponse
//	@Failure		400		{object}	marketsdk.ErrorResponse
//	@Failure		401		{object}	marketsdk.ErrorResponse
//	@Failure		403		{object}	marketsdk.ErrorResponse
//	@Failure		500		{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/invites [post].
func (h *CreateInviteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req marketsdk.CreateInviteRequest
	if !decodeValid(w, r, &req) {
		return
	}

	link, err := h.InviteService.Issue(ctx, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInviteEmail) {
			writeError(w, http.StatusBadRequest, "invalid invite email")
			return
		}
		slogx.FromContext(ctx).Error("failed to create invite", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to create invite")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, marketsdk.InviteLinkResponse{
		Success:   true,
		Link:      link.Link,
		Email:     link.Invite.Email,
		ExpiresAt: link.Invite.ExpiresAt,
	})
}

type ListInvitesHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		List Admin Invites
//	@Description	All invites newest-first. Token hashes and raw tokens are never listed. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	marketsdk.InvitesResponse
//	@Failure		401	{object}	marketsdk.ErrorResponse
//	@Failure		403	{object}	marketsdk.ErrorResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/invites [get].
func (h *ListInvitesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invites, err := h.InviteService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list invites", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list invites")
		return
	}

	out := make([]marketsdk.Invite, 0, len(invites))
	for _, inv := range invites {
		out = append(out, marketsdk.Invite{
			ID:        inv.ID,
			Email:     inv.Email,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, marketsdk.InvitesResponse{
		Success: true,
		Invites: out,
	})
}
