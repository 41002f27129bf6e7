package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/pkg/httpx"
	"github.com/kmrmotors/motodrive/pkg/jwtx"
	"github.com/kmrmotors/motodrive/pkg/slogx"

	_ "github.com/kmrmotors/motodrive/api/market" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         jwtx.Keys
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	DirectoryService *service.DirectoryService
	InviteService    *service.InviteService
	CatalogService   *service.CatalogService
	InventoryService *service.InventoryService
	WishlistService  *service.WishlistService
	BookingService   *service.BookingService
	DashboardService *service.DashboardService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	keys jwtx.Keys,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Request logging runs outermost so the metrics middleware's route
	// label and the log line agree on the same request.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerCatalog()
	r.registerWishlist()
	r.registerTestDrives()
	r.registerUsers()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MotoDrive Marketplace API
//	@version		0.1.0
//	@description	Motorbike marketplace backend: bike catalog with filtering and pagination, per-user
//	@description	wishlist, test-drive bookings with slot conflict protection, and admin moderation.
//	@description
//	@description				Authentication is delegated to an external identity provider; requests carry its
//	@description				RS256-signed bearer tokens, verified against the provider's JWKS endpoint.
//
//	@contact.name				KMR Motors Engineering
//	@contact.url				https://github.com/kmrmotors/motodrive
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity-provider JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated wires the resolve-user chain shared by signed-in routes.
func (r *Router) authenticated(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		ResolveUser(r.DirectoryService, true),
		httpx.RateLimitByUser(limit),
	)
}

// admin wires the authenticated chain plus the admin role check.
func (r *Router) admin(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		ResolveUser(r.DirectoryService, true),
		RequireAdmin(),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerCatalog() {
	// Listing is public but signed-in callers get per-bike wishlist flags,
	// so the principal and user are attached when present.
	r.Mux.Handle("GET /v1/bikes",
		httpx.Chain(&BikesListHandler{CatalogService: r.CatalogService},
			httpx.OptionalAuthn(r.verifier),
			ResolveUser(r.DirectoryService, false),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /v1/bikes/filters",
		httpx.Chain(&BikeFiltersHandler{CatalogService: r.CatalogService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Detail is public but enriched for signed-in callers, so the
	// principal and user are attached when present.
	r.Mux.Handle("GET /v1/bikes/{id}",
		httpx.Chain(&BikeDetailHandler{CatalogService: r.CatalogService},
			httpx.OptionalAuthn(r.verifier),
			ResolveUser(r.DirectoryService, false),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerWishlist() {
	r.Mux.Handle("POST /v1/bikes/{id}/save",
		r.authenticated(&ToggleSaveHandler{WishlistService: r.WishlistService}, httpx.ModerateLimit),
	)
	r.Mux.Handle("GET /v1/saved-bikes",
		r.authenticated(&SavedBikesHandler{CatalogService: r.CatalogService}, httpx.LenientLimit),
	)
}

func (r *Router) registerTestDrives() {
	r.Mux.Handle("POST /v1/test-drives",
		r.authenticated(&BookTestDriveHandler{BookingService: r.BookingService}, httpx.ModerateLimit),
	)
	r.Mux.Handle("GET /v1/test-drives",
		r.authenticated(&MyTestDrivesHandler{BookingService: r.BookingService}, httpx.LenientLimit),
	)
	r.Mux.Handle("POST /v1/test-drives/{id}/cancel",
		r.authenticated(&CancelTestDriveHandler{BookingService: r.BookingService}, httpx.ModerateLimit),
	)
}

func (r *Router) registerUsers() {
	r.Mux.Handle("GET /v1/me",
		r.authenticated(&MeHandler{}, httpx.LenientLimit),
	)
	r.Mux.Handle("POST /v1/users/onboarding",
		r.authenticated(&OnboardingHandler{DirectoryService: r.DirectoryService}, httpx.ModerateLimit),
	)
}

func (r *Router) registerAdmin() {
	r.Mux.Handle("POST /v1/admin/invites",
		r.admin(&CreateInviteHandler{InviteService: r.InviteService}, httpx.StrictLimit),
	)
	r.Mux.Handle("GET /v1/admin/invites",
		r.admin(&ListInvitesHandler{InviteService: r.InviteService}, httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/admin/test-drives",
		r.admin(&AdminTestDrivesHandler{BookingService: r.BookingService}, httpx.LenientLimit),
	)
	r.Mux.Handle("PUT /v1/admin/test-drives/{id}/status",
		r.admin(&SetBookingStatusHandler{BookingService: r.BookingService}, httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/admin/dashboard",
		r.admin(&DashboardHandler{DashboardService: r.DashboardService}, httpx.LenientLimit),
	)

	r.Mux.Handle("POST /v1/admin/bikes",
		r.admin(&CreateBikeHandler{InventoryService: r.InventoryService}, httpx.ModerateLimit),
	)
	r.Mux.Handle("PATCH /v1/admin/bikes/{id}",
		r.admin(&UpdateBikeHandler{InventoryService: r.InventoryService}, httpx.ModerateLimit),
	)
	r.Mux.Handle("DELETE /v1/admin/bikes/{id}",
		r.admin(&DeleteBikeHandler{InventoryService: r.InventoryService}, httpx.ModerateLimit),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /metrics", promhttp.Handler())

	// Bootstrap is rate limited hard; it only ever succeeds once.
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(&BootstrapHandler{BootstrapService: r.BootstrapService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}
