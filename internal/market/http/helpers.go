package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kmrmotors/motodrive/internal/market/domain"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// writeError emits the uniform failure envelope.
func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, marketsdk.ErrorResponse{Success: false, Error: msg})
}

// decodeValid decodes a JSON body into dst and runs struct validation.
// Returns false after writing the error response when either step fails.
func decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, http.StatusBadRequest, "invalid field: "+verrs[0].Field())
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request")
		return false
	}
	return true
}

const dateLayout = "2006-01-02"

func toSDKBike(b domain.Bike) marketsdk.Bike {
	images := b.Images
	if images == nil {
		images = []string{}
	}
	return marketsdk.Bike{
		ID:           b.ID,
		Make:         b.Make,
		Model:        b.Model,
		Year:         b.Year,
		Price:        b.Price,
		Mileage:      b.Mileage,
		BodyType:     b.BodyType,
		FuelType:     b.FuelType,
		Transmission: b.Transmission,
		Color:        b.Color,
		Status:       string(b.Status),
		Featured:     b.Featured,
		Images:       images,
		Description:  b.Description,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toSDKBikes(bikes []domain.Bike) []marketsdk.Bike {
	out := make([]marketsdk.Bike, 0, len(bikes))
	for _, b := range bikes {
		out = append(out, toSDKBike(b))
	}
	return out
}

func toSDKBooking(d store.BookingDetail) marketsdk.Booking {
	b := marketsdk.Booking{
		ID:          d.Booking.ID,
		Bike:        toSDKBike(d.Bike),
		BookingDate: d.Booking.BookingDate.Format(dateLayout),
		StartTime:   d.Booking.StartTime,
		EndTime:     d.Booking.EndTime,
		Status:      string(d.Booking.Status),
		Notes:       d.Booking.Notes,
		CreatedAt:   d.Booking.CreatedAt,
	}
	if d.User != nil {
		b.User = &marketsdk.BookingUser{
			ID:    d.User.ID,
			Name:  d.User.Name,
			Email: d.User.Email,
			Phone: d.User.Phone,
		}
	}
	return b
}

func toSDKUser(u domain.User) marketsdk.User {
	return marketsdk.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		ImageURL:  u.ImageURL,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
