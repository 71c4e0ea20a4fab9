package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shopadmin-backend/api/controllers"
	"github.com/angelmondragon/shopadmin-backend/api/middleware"
	"github.com/angelmondragon/shopadmin-backend/internal/adminusers"
	"github.com/angelmondragon/shopadmin-backend/internal/articles"
	"github.com/angelmondragon/shopadmin-backend/internal/auth"
	"github.com/angelmondragon/shopadmin-backend/internal/boutiques"
	"github.com/angelmondragon/shopadmin-backend/internal/identities"
	"github.com/angelmondragon/shopadmin-backend/internal/roles"
	"github.com/angelmondragon/shopadmin-backend/pkg/auth/session"
	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/logger"
	"github.com/angelmondragon/shopadmin-backend/pkg/metrics"
)

// Services groups the domain services exposed over HTTP.
type Services struct {
	Identities identities.Service
	Users      adminusers.Service
	Roles      roles.Service
	Articles   articles.Service
	Boutiques  boutiques.Service
	Auth       auth.Service
}

// Deps carries everything the router needs. RateLimiter, Sessions and
// Registry are optional and must be left nil (not typed nil) when absent.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Services    Services
	Readiness   map[string]controllers.Pinger
	RateLimiter middleware.RateLimiterStore
	Sessions    session.Checker
	Registry    *prometheus.Registry
}

func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger
	httpMetrics := metrics.NewHTTPMetrics(registerer(d.Registry))

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)
	r.NotFound(controllers.NotFound(logg))
	r.MethodNotAllowed(controllers.MethodNotAllowed(logg))

	r.Get("/", controllers.Welcome())
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, d.Readiness, logg))
	})
	if d.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	onBlocked := func() { httpMetrics.IncLogin(metrics.LoginRateLimited) }

	r.Route("/api", func(r chi.Router) {
		// POST /api/user creates an admin user; credentials are checked here.
		r.With(middleware.AuthRateLimit(loginPolicy, d.RateLimiter, logg, onBlocked)).
			Post("/user/login", controllers.AuthLogin(d.Services.Auth, httpMetrics, logg))
		r.Post("/user/logout", controllers.AuthLogout(d.Services.Auth, cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			if cfg.FeatureFlags.RequireAuth && cfg.JWT.Enabled() {
				r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))
			}

			mountEntity(r, "/identity", identities.Entity, d.Services.Identities, logg, nil)
			mountEntity(r, "/role", roles.Entity, d.Services.Roles, logg, nil)
			mountEntity(r, "/articles", articles.Entity, d.Services.Articles, logg, nil)
			mountEntity(r, "/boutique", boutiques.Entity, d.Services.Boutiques, logg, nil)
			mountEntity(r, "/user", adminusers.Entity, d.Services.Users, logg, func(r chi.Router) {
				users := d.Services.Users
				r.Get("/count", controllers.UserCount(users, logg))
				r.Get("/search", controllers.UserSearch(users, logg))
				r.Get("/exists/{username}", controllers.UserExists(users, logg))
				r.Get("/username/{username}", controllers.UserByUsername(users, logg))
				r.Get("/identity/{identityId}", controllers.UsersByIdentity(users, logg))
				r.Put("/{id}/password", controllers.ChangePassword(d.Services.Auth, logg))
				r.Post("/reset-password", controllers.ResetPassword(d.Services.Auth, logg))
			})
		})
	})

	return r
}

// mountEntity registers the CRUD routes of one entity under path. extra adds
// entity specific routes to the same subrouter.
func mountEntity[In any, D any](r chi.Router, path, entity string, svc controllers.EntityService[In, D], logg *logger.Logger, extra func(chi.Router)) {
	h := controllers.NewEntityHandlers(entity, svc, logg)
	r.Route(path, func(r chi.Router) {
		r.Post("/", h.Create())
		r.Get("/", h.List())
		r.Get("/paginate", h.Page())
		r.Get("/{id}", h.Get())
		r.Put("/{id}", h.Update())
		r.Delete("/{id}", h.Delete())
		if extra != nil {
			extra(r)
		}
	})
}

func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return nil
	}
	return reg
}
