package marketsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a non-2xx response decoded from the failure envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("motodrive api: %d %s", e.StatusCode, e.Message)
}

// Client is a typed client for the motodrive HTTP API. Token, when set, is
// sent as a bearer credential on every request. InviteToken, when set, is
// sent as the X-Invite-Token header so the server can redeem an admin
// invite during sign-in.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	Token       string
	InviteToken string
}

// NewClient creates a client with a 10 second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

// WithInviteToken returns a copy of the client that presents an invite
// token on its requests.
func (c *Client) WithInviteToken(token string) *Client {
	clone := *c
	clone.InviteToken = token
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if c.InviteToken != "" {
		req.Header.Set("X-Invite-Token", c.InviteToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListBikesOptions are the catalog listing query parameters.
type ListBikesOptions struct {
	Search       string
	Make         string
	BodyType     string
	FuelType     string
	Transmission string
	MinPrice     float64
	MaxPrice     float64
	Sort         string
	Page         int
	Limit        int
}

func (o ListBikesOptions) query() string {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("search", o.Search)
	set("make", o.Make)
	set("bodyType", o.BodyType)
	set("fuelType", o.FuelType)
	set("transmission", o.Transmission)
	set("sort", o.Sort)
	if o.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(o.MinPrice, 'f', -1, 64))
	}
	if o.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(o.MaxPrice, 'f', -1, 64))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListBikes fetches one page of the catalog.
func (c *Client) ListBikes(ctx context.Context, opts ListBikesOptions) (BikesResponse, error) {
	var out BikesResponse
	err := c.do(ctx, http.MethodGet, "/v1/bikes"+opts.query(), nil, &out)
	return out, err
}

// Filters fetches the distinct filter values.
func (c *Client) Filters(ctx context.Context) (FiltersResponse, error) {
	var out FiltersResponse
	err := c.do(ctx, http.MethodGet, "/v1/bikes/filters", nil, &out)
	return out, err
}

// GetBike fetches a single bike detail.
func (c *Client) GetBike(ctx context.Context, id string) (BikeDetailResponse, error) {
	var out BikeDetailResponse
	err := c.do(ctx, http.MethodGet, "/v1/bikes/"+url.PathEscape(id), nil, &out)
	return out, err
}

// ToggleSave flips the wishlist state of a bike.
func (c *Client) ToggleSave(ctx context.Context, bikeID string) (ToggleSaveResponse, error) {
	var out ToggleSaveResponse
	err := c.do(ctx, http.MethodPost, "/v1/bikes/"+url.PathEscape(bikeID)+"/save", nil, &out)
	return out, err
}

// SavedBikes fetches the caller's wishlist.
func (c *Client) SavedBikes(ctx context.Context) (SavedBikesResponse, error) {
	var out SavedBikesResponse
	err := c.do(ctx, http.MethodGet, "/v1/saved-bikes", nil, &out)
	return out, err
}

// BookTestDrive reserves a slot.
func (c *Client) BookTestDrive(ctx context.Context, req BookTestDriveRequest) (BookingResponse, error) {
	var out BookingResponse
	err := c.do(ctx, http.MethodPost, "/v1/test-drives", req, &out)
	return out, err
}

// MyTestDrives fetches the caller's bookings.
func (c *Client) MyTestDrives(ctx context.Context) (BookingsResponse, error) {
	var out BookingsResponse
	err := c.do(ctx, http.MethodGet, "/v1/test-drives", nil, &out)
	return out, err
}

// CancelTestDrive cancels a booking the caller owns.
func (c *Client) CancelTestDrive(ctx context.Context, id string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/v1/test-drives/"+url.PathEscape(id)+"/cancel", nil, &out)
	return out, err
}

// Me fetches the caller's directory record.
func (c *Client) Me(ctx context.Context) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodGet, "/v1/me", nil, &out)
	return out, err
}

// CompleteOnboarding records the caller's contact details.
func (c *Client) CompleteOnboarding(ctx context.Context, req OnboardingRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/users/onboarding", req, &out)
	return out, err
}

// Bootstrap designates the initial admin. Only succeeds while no admin
// exists and the server has a bootstrap token configured.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/bootstrap", req, &out)
	return out, err
}

// CreateInvite mints a single-use admin invite link.
func (c *Client) CreateInvite(ctx context.Context, req CreateInviteRequest) (InviteLinkResponse, error) {
	var out InviteLinkResponse
	err := c.do(ctx, http.MethodPost, "/v1/admin/invites", req, &out)
	return out, err
}

// ListInvites fetches outstanding invites, newest first.
func (c *Client) ListInvites(ctx context.Context) (InvitesResponse, error) {
	var out InvitesResponse
	err := c.do(ctx, http.MethodGet, "/v1/admin/invites", nil, &out)
	return out, err
}

// AdminTestDrives fetches all bookings, optionally filtered by a free-text
// search and a status.
func (c *Client) AdminTestDrives(ctx context.Context, search, status string) (BookingsResponse, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/v1/admin/test-drives"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out BookingsResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// SetBookingStatus assigns a booking status as an admin.
func (c *Client) SetBookingStatus(ctx context.Context, id string, req SetBookingStatusRequest) (BookingResponse, error) {
	var out BookingResponse
	err := c.do(ctx, http.MethodPut, "/v1/admin/test-drives/"+url.PathEscape(id)+"/status", req, &out)
	return out, err
}

// Dashboard fetches the admin overview stats.
func (c *Client) Dashboard(ctx context.Context) (DashboardResponse, error) {
	var out DashboardResponse
	err := c.do(ctx, http.MethodGet, "/v1/admin/dashboard", nil, &out)
	return out, err
}

// CreateBike lists a new bike in the inventory.
func (c *Client) CreateBike(ctx context.Context, req CreateBikeRequest) (BikeResponse, error) {
	var out BikeResponse
	err := c.do(ctx, http.MethodPost, "/v1/admin/bikes", req, &out)
	return out, err
}

// UpdateBike changes a bike's status or featured flag.
func (c *Client) UpdateBike(ctx context.Context, id string, req UpdateBikeRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPatch, "/v1/admin/bikes/"+url.PathEscape(id), req, &out)
	return out, err
}

// DeleteBike removes a bike from the inventory.
func (c *Client) DeleteBike(ctx context.Context, id string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodDelete, "/v1/admin/bikes/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Health probes readiness.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}
