package marketsdk

import "time"

// ErrorResponse is the uniform failure envelope. Every endpoint reports
// failure as {"success": false, "error": "..."} so clients branch on the
// discriminant instead of parsing per-endpoint shapes.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is the success envelope for operations with no payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Bike is the catalog representation of a bike.
type Bike struct {
	ID           string    `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        float64   `json:"price"`
	Mileage      int       `json:"mileage"`
	BodyType     string    `json:"bodyType,omitempty"`
	FuelType     string    `json:"fuelType,omitempty"`
	Transmission string    `json:"transmission,omitempty"`
	Color        string    `json:"color,omitempty"`
	Status       string    `json:"status"`
	Featured     bool      `json:"featured"`
	Wishlisted   bool      `json:"wishlisted"`
	Images       []string  `json:"images"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// BikesResponse is the catalog listing payload.
type BikesResponse struct {
	Success    bool       `json:"success"`
	Bikes      []Bike     `json:"bikes"`
	Pagination Pagination `json:"pagination"`
}

// PriceRange is the inclusive price bounds over available inventory.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters are the distinct attribute values for building filter controls.
type Filters struct {
	Makes         []string   `json:"makes"`
	BodyTypes     []string   `json:"bodyTypes"`
	FuelTypes     []string   `json:"fuelTypes"`
	Transmissions []string   `json:"transmissions"`
	PriceRange    PriceRange `json:"priceRange"`
}

// FiltersResponse is the catalog filters payload.
type FiltersResponse struct {
	Success bool    `json:"success"`
	Filters Filters `json:"filters"`
}

// WorkingHour is one day of dealership opening hours.
type WorkingHour struct {
	DayOfWeek string `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}

// Dealership is the static dealership record shown on bike detail pages.
type Dealership struct {
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	WorkingHours []WorkingHour `json:"workingHours"`
}

// TestDriveInfo summarises the caller's existing booking on a bike.
type TestDriveInfo struct {
	ID          string `json:"id"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
}

// BikeDetailResponse is the single-bike payload. IsWishlisted and TestDrive
// are only meaningful for authenticated callers.
type BikeDetailResponse struct {
	Success      bool           `json:"success"`
	Bike         Bike           `json:"bike"`
	IsWishlisted bool           `json:"isWishlisted"`
	TestDrive    *TestDriveInfo `json:"testDrive,omitempty"`
	Dealership   *Dealership    `json:"dealership,omitempty"`
}

// ToggleSaveResponse reports the wishlist state after a toggle.
type ToggleSaveResponse struct {
	Success bool   `json:"success"`
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}

// SavedBikesResponse is the caller's wishlist.
type SavedBikesResponse struct {
	Success bool   `json:"success"`
	Bikes   []Bike `json:"bikes"`
}

// BookTestDriveRequest reserves a test-drive slot.
type BookTestDriveRequest struct {
	BikeID    string `json:"bikeId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
	Notes     string `json:"notes" validate:"max=500"`
}

// BookingUser is the user summary attached to admin booking listings.
type BookingUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Booking is a test-drive reservation with its bike summary.
type Booking struct {
	ID          string       `json:"id"`
	Bike        Bike         `json:"bike"`
	User        *BookingUser `json:"user,omitempty"`
	BookingDate string       `json:"bookingDate"`
	StartTime   string       `json:"startTime"`
	EndTime     string       `json:"endTime"`
	Status      string       `json:"status"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// BookingResponse wraps a single booking.
type BookingResponse struct {
	Success bool    `json:"success"`
	Booking Booking `json:"booking"`
}

// BookingsResponse wraps a booking listing.
type BookingsResponse struct {
	Success  bool      `json:"success"`
	Bookings []Booking `json:"bookings"`
}

// SetBookingStatusRequest is the admin status assignment.
type SetBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED NO_SHOW"`
}

// CreateInviteRequest mints an admin invite.
type CreateInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Invite is the administrative view of an invite. The raw token is never
// listed; only the freshly minted link carries it.
type Invite struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// InviteLinkResponse is the mint payload.
type InviteLinkResponse struct {
	Success   bool      `json:"success"`
	Link      string    `json:"link"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// InvitesResponse lists invites newest-first.
type InvitesResponse struct {
	Success bool     `json:"success"`
	Invites []Invite `json:"invites"`
}

// User is the directory record for the authenticated caller.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserResponse wraps the caller's own record.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// OnboardingRequest records contact details after first sign-in.
type OnboardingRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"required,min=4,max=32"`
}

// CreateBikeRequest lists a new bike.
type CreateBikeRequest struct {
	Make         string   `json:"make" validate:"required,min=1,max=100"`
	Model        string   `json:"model" validate:"required,min=1,max=100"`
	Year         int      `json:"year" validate:"required,gte=1900,lte=2100"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Mileage      int      `json:"mileage" validate:"gte=0"`
	BodyType     string   `json:"bodyType" validate:"max=50"`
	FuelType     string   `json:"fuelType" validate:"max=50"`
	Transmission string   `json:"transmission" validate:"max=50"`
	Color        string   `json:"color" validate:"max=50"`
	Featured     bool     `json:"featured"`
	Images       []string `json:"images" validate:"dive,url"`
	Description  string   `json:"description" validate:"max=5000"`
}

// UpdateBikeRequest changes inventory status or featured flag. Nil fields
// are left unchanged.
type UpdateBikeRequest struct {
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE UNAVAILABLE SOLD"`
	Featured *bool   `json:"featured,omitempty"`
}

// BikeResponse wraps a single bike.
type BikeResponse struct {
	Success bool `json:"success"`
	Bike    Bike `json:"bike"`
}

// DashboardStats is the admin overview aggregate.
type DashboardStats struct {
	Bikes struct {
		Total       int `json:"total"`
		Available   int `json:"available"`
		Sold        int `json:"sold"`
		Unavailable int `json:"unavailable"`
		Featured    int `json:"featured"`
	} `json:"bikes"`
	Bookings struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Confirmed int `json:"confirmed"`
		Completed int `json:"completed"`
		Cancelled int `json:"cancelled"`
		NoShow    int `json:"noShow"`
	} `json:"bookings"`
	ConversionRate float64 `json:"conversionRate"`
}

// DashboardResponse wraps the admin overview.
type DashboardResponse struct {
	Success bool           `json:"success"`
	Stats   DashboardStats `json:"stats"`
}

// BootstrapRequest designates the initial admin.
type BootstrapRequest struct {
	Token string `json:"token" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// HealthChecks itemises readiness probes.
type HealthChecks struct {
	Database string `json:"database"`
	Verifier string `json:"verifier"`
}

// HealthResponse is the liveness/readiness payload.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
