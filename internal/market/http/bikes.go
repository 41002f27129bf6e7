package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

type BikesListHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		List Bikes
//	@Description	List available bikes with optional search, filters, sorting, and pagination.
//	@Tags			Catalog
//	@Produce		json
//	@Param			search			query		string	false	"Substring match over make, model, and description"
//	@Param			make			query		string	false	"Exact make (case-insensitive)"
//	@Param			bodyType		query		string	false	"Exact body type (case-insensitive)"
//	@Param			fuelType		query		string	false	"Exact fuel type (case-insensitive)"
//	@Param			transmission	query		string	false	"Exact transmission (case-insensitive)"
//	@Param			minPrice		query		number	false	"Inclusive lower price bound"
//	@Param			maxPrice		query		number	false	"Inclusive upper price bound"
//	@Param			sort			query		string	false	"newest | priceAsc | priceDesc"
//	@Param			page			query		int		false	"Page number (default 1)"
//	@Param			limit			query		int		false	"Page size (default 6)"
//	@Success		200				{object}	marketsdk.BikesResponse
//	@Failure		500				{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/bikes [get].
func (h *BikesListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userID := ""
	if u := userFromContext(ctx); u != nil {
		userID = u.ID
	}

	criteria := service.ListCriteria{
		Search:       q.Get("search"),
		Make:         q.Get("make"),
		BodyType:     q.Get("bodyType"),
		FuelType:     q.Get("fuelType"),
		Transmission: q.Get("transmission"),
		Sort:         store.BikeSort(q.Get("sort")),
	}
	criteria.MinPrice, _ = strconv.ParseFloat(q.Get("minPrice"), 64)
	criteria.MaxPrice, _ = strconv.ParseFloat(q.Get("maxPrice"), 64)
	criteria.Page, _ = strconv.Atoi(q.Get("page"))
	criteria.Limit, _ = strconv.Atoi(q.Get("limit"))

	page, err := h.CatalogService.List(ctx, criteria, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list bikes", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list bikes")
		return
	}

	bikes := toSDKBikes(page.Bikes)
	for i := range bikes {
		bikes[i].Wishlisted = page.Saved[bikes[i].ID]
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.BikesResponse{
		Success: true,
		Bikes:   bikes,
		Pagination: marketsdk.Pagination{
			Total: page.Total,
			Page:  page.Page,
			Limit: page.Limit,
			Pages: page.Pages,
		},
	})
}

type BikeFiltersHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		Catalog Filter Values
//	@Description	Distinct makes, body types, fuel types, and transmissions over available inventory, plus the price range.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	marketsdk.FiltersResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Router			/v1/bikes/filters [get].
func (h *BikeFiltersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fv, err := h.CatalogService.Filters(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to compute filters", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to compute filters")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.FiltersResponse{
		Success: true,
		Filters: marketsdk.Filters{
			Makes:         emptyIfNil(fv.Makes),
			BodyTypes:     emptyIfNil(fv.BodyTypes),
			FuelTypes:     emptyIfNil(fv.FuelTypes),
			Transmissions: emptyIfNil(fv.Transmissions),
			PriceRange:    marketsdk.PriceRange{Min: fv.MinPrice, Max: fv.MaxPrice},
		},
	})
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type BikeDetailHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		Bike Detail
//	@Description	Full bike detail with dealership info. For authenticated callers the wishlist flag and any existing test drive are included.
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string	true	"Bike ID"
//	@Success		200	{object}	marketsdk.BikeDetailResponse
//	@Failure		404	{object}	marketsdk.ErrorResponse
//	@Failure		500	{object}	marketsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/bikes/{id} [get].
func (h *BikeDetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := ""
	if u := userFromContext(ctx); u != nil {
		userID = u.ID
	}

	detail, err := h.CatalogService.GetByID(ctx, r.PathValue("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrBikeNotFound) {
			writeError(w, http.StatusNotFound, "bike not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to fetch bike", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch bike")
		return
	}

	resp := marketsdk.BikeDetailResponse{
		Success:      true,
		Bike:         toSDKBike(detail.Bike),
		IsWishlisted: detail.Wishlisted,
	}
	resp.Bike.Wishlisted = detail.Wishlisted
	if detail.TestDrive != nil {
		resp.TestDrive = &marketsdk.TestDriveInfo{
			ID:          detail.TestDrive.ID,
			BookingDate: detail.TestDrive.BookingDate.Format(dateLayout),
			StartTime:   detail.TestDrive.StartTime,
			EndTime:     detail.TestDrive.EndTime,
			Status:      string(detail.TestDrive.Status),
		}
	}
	if detail.Dealership.ID != "" {
		d := &marketsdk.Dealership{
			Name:         detail.Dealership.Name,
			Address:      detail.Dealership.Address,
			Phone:        detail.Dealership.Phone,
			Email:        detail.Dealership.Email,
			WorkingHours: make([]marketsdk.WorkingHour, 0, len(detail.Hours)),
		}
		for _, h := range detail.Hours {
			d.WorkingHours = append(d.WorkingHours, marketsdk.WorkingHour{
				DayOfWeek: h.DayOfWeek,
				OpenTime:  h.OpenTime,
				CloseTime: h.CloseTime,
				IsOpen:    h.IsOpen,
			})
		}
		resp.Dealership = d
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
