package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artlease-io/artlease-backend/api/controllers"
	"github.com/artlease-io/artlease-backend/api/middleware"
	authsvc "github.com/artlease-io/artlease-backend/internal/auth"
	cartsvc "github.com/artlease-io/artlease-backend/internal/cart"
	"github.com/artlease-io/artlease-backend/internal/catalog"
	checkoutsvc "github.com/artlease-io/artlease-backend/internal/checkout"
	ordersvc "github.com/artlease-io/artlease-backend/internal/orders"
	"github.com/artlease-io/artlease-backend/pkg/auth/session"
	"github.com/artlease-io/artlease-backend/pkg/config"
	"github.com/artlease-io/artlease-backend/pkg/db"
	"github.com/artlease-io/artlease-backend/pkg/enums"
	"github.com/artlease-io/artlease-backend/pkg/logger"
	"github.com/artlease-io/artlease-backend/pkg/metrics"
	"github.com/artlease-io/artlease-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          redis.Pinger
	SessionManager sessionManager
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       *prometheus.Registry

	AuthService     authsvc.Service
	CatalogService  catalog.Service
	CartService     cartsvc.Service
	CheckoutService checkoutsvc.Service
	OrdersService   ordersvc.Service
	ProvidersRepo   controllers.ProviderDirectory
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/", controllers.CatalogList(deps.CatalogService, logg))
		r.Get("/facets", controllers.CatalogFacets(deps.CatalogService, logg))
		r.Get("/{artworkId}", controllers.CatalogDetail(deps.CatalogService, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(middleware.CartToken())
		r.Get("/", controllers.CartFetch(deps.CartService, logg))
		r.Post("/items", controllers.CartAdd(deps.CartService, logg))
		r.Patch("/items/{artworkId}", controllers.CartUpdateLine(deps.CartService, logg))
		r.Delete("/items/{artworkId}", controllers.CartRemoveLine(deps.CartService, logg))
		r.Delete("/", controllers.CartClear(deps.CartService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.CartToken())
		r.Use(middleware.OptionalAuth(cfg.JWT, deps.SessionManager, logg))
		r.Post("/api/v1/checkout", controllers.Checkout(deps.CheckoutService, logg))
	})

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Get("/", controllers.OrdersListMine(deps.OrdersService, logg))
		r.Get("/{orderId}", controllers.OrdersDetail(deps.OrdersService, logg))
	})

	r.Route("/api/v1/provider/artworks", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRoles(logg,
			string(enums.RoleArtist),
			string(enums.RoleGallery),
			string(enums.RoleAdmin),
		))
		r.Get("/", controllers.ProviderListArtworks(deps.CatalogService, logg))
		r.Post("/", controllers.ProviderCreateArtwork(deps.CatalogService, logg))
		r.Patch("/{artworkId}", controllers.ProviderUpdateArtwork(deps.CatalogService, logg))
		r.Delete("/{artworkId}", controllers.ProviderDeleteArtwork(deps.CatalogService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))
		r.Get("/orders", controllers.AdminOrdersList(deps.OrdersService, logg))
		r.Get("/artworks", controllers.AdminArtworksList(deps.CatalogService, logg))
		r.Get("/providers", controllers.AdminProvidersList(deps.ProvidersRepo, logg))
	})

	return r
}
