package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arimendoza/coffeehaus-backend/api/controllers"
	cartcontrollers "github.com/arimendoza/coffeehaus-backend/api/controllers/cart"
	"github.com/arimendoza/coffeehaus-backend/api/middleware"
	"github.com/arimendoza/coffeehaus-backend/internal/auth"
	"github.com/arimendoza/coffeehaus-backend/internal/cart"
	"github.com/arimendoza/coffeehaus-backend/internal/catalog"
	"github.com/arimendoza/coffeehaus-backend/internal/favorites"
	"github.com/arimendoza/coffeehaus-backend/internal/users"
	"github.com/arimendoza/coffeehaus-backend/pkg/auth/session"
	"github.com/arimendoza/coffeehaus-backend/pkg/config"
	"github.com/arimendoza/coffeehaus-backend/pkg/db"
	"github.com/arimendoza/coffeehaus-backend/pkg/logger"
	"github.com/arimendoza/coffeehaus-backend/pkg/metrics"
	"github.com/arimendoza/coffeehaus-backend/pkg/redis"
)

// RouterParams bundles everything NewRouter needs to assemble the HTTP surface.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	SessionChecker  session.AccessSessionChecker
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer

	AuthService     auth.Service
	RegisterService auth.RegisterService
	CartService     cart.Service
	CatalogService  catalog.Service
	FavoritesSvc    favorites.Service
	UsersService    users.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, controllers.ReadinessDeps(p.DB, p.Redis)))
	})

	if p.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).Post("/register", controllers.AuthRegister(p.RegisterService, p.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(p.AuthService, logg))
	})

	r.Route("/api/v1/coffees", func(r chi.Router) {
		r.Get("/", controllers.CatalogCoffees(p.CatalogService, logg))
		r.Get("/{productId}", controllers.CatalogProductDetail(p.CatalogService, logg))
	})
	r.Route("/api/v1/beans", func(r chi.Router) {
		r.Get("/", controllers.CatalogBeans(p.CatalogService, logg))
		r.Get("/{productId}", controllers.CatalogProductDetail(p.CatalogService, logg))
	})
	if !cfg.App.IsProd() {
		r.Post("/api/v1/products", controllers.CatalogCreateProduct(p.CatalogService, logg))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/v1/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(p.CartService, logg))
			r.Post("/", cartcontrollers.CartReplace(p.CartService, logg))
			r.Post("/add", cartcontrollers.CartAddItem(p.CartService, logg))
			r.Delete("/", cartcontrollers.CartClear(p.CartService, logg))
		})

		r.Route("/v1/favorites", func(r chi.Router) {
			r.Get("/", controllers.FavoritesList(p.FavoritesSvc, logg))
			r.Post("/", controllers.FavoritesAdd(p.FavoritesSvc, logg))
			r.Delete("/{productId}", controllers.FavoritesRemove(p.FavoritesSvc, logg))
		})

		r.Get("/v1/users", controllers.UsersList(p.UsersService, logg))
	})

	return r
}
