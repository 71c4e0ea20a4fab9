package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/shopadmin-backend/api/controllers"
	"github.com/angelmondragon/shopadmin-backend/api/routes"
	"github.com/angelmondragon/shopadmin-backend/internal/adminusers"
	"github.com/angelmondragon/shopadmin-backend/internal/articles"
	"github.com/angelmondragon/shopadmin-backend/internal/auth"
	"github.com/angelmondragon/shopadmin-backend/internal/boutiques"
	"github.com/angelmondragon/shopadmin-backend/internal/identities"
	"github.com/angelmondragon/shopadmin-backend/internal/roles"
	"github.com/angelmondragon/shopadmin-backend/pkg/auth/session"
	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/db"
	"github.com/angelmondragon/shopadmin-backend/pkg/env"
	"github.com/angelmondragon/shopadmin-backend/pkg/instance"
	"github.com/angelmondragon/shopadmin-backend/pkg/logger"
	"github.com/angelmondragon/shopadmin-backend/pkg/migrate"
	"github.com/angelmondragon/shopadmin-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closers []func() error
	closeAll := func() {
		var errs error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = multierr.Append(errs, closers[i]())
		}
		if errs != nil {
			logg.Error(context.Background(), "error releasing resources", errs)
		}
	}
	fail := func(msg string, err error) {
		logg.Error(context.Background(), msg, err)
		closeAll()
		os.Exit(1)
	}

	adminDB, err := db.New(ctx, "admin", cfg.AdminDB, logg)
	if err != nil {
		fail("failed to bootstrap admin database", err)
	}
	closers = append(closers, adminDB.Close)

	usersDB := adminDB
	if !cfg.UsersDB.SameTarget(cfg.AdminDB) {
		usersDB, err = db.New(ctx, "users", cfg.UsersDB, logg)
		if err != nil {
			fail("failed to bootstrap users database", err)
		}
		closers = append(closers, usersDB.Close)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, migrate.Targets(cfg, adminDB, usersDB)); err != nil {
		fail("failed to run dev migrations", err)
	}

	readiness := map[string]controllers.Pinger{
		"admin_db": adminDB,
		"users_db": usersDB,
	}

	deps := routes.Deps{
		Config:    cfg,
		Logger:    logg,
		Readiness: readiness,
		Registry:  prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	authParams := auth.ServiceParams{JWTConfig: cfg.JWT, Password: cfg.Password}

	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			fail("failed to bootstrap redis", err)
		}
		closers = append(closers, redisClient.Close)
		readiness["redis"] = redisClient
		deps.RateLimiter = redisClient

		if cfg.JWT.Enabled() {
			sessions, err := session.NewManager(redisClient, cfg.JWT)
			if err != nil {
				fail("failed to create session manager", err)
			}
			deps.Sessions = sessions
			authParams.Sessions = sessions
		}
	}

	identityService, err := identities.NewService(identities.NewRepository(usersDB.DB()))
	if err != nil {
		fail("failed to create identity service", err)
	}
	userRepo := adminusers.NewRepository(usersDB.DB())
	userService, err := adminusers.NewService(userRepo, cfg.Password)
	if err != nil {
		fail("failed to create user service", err)
	}
	roleService, err := roles.NewService(roles.NewRepository(adminDB.DB()))
	if err != nil {
		fail("failed to create role service", err)
	}
	articleService, err := articles.NewService(articles.NewRepository(adminDB.DB()))
	if err != nil {
		fail("failed to create article service", err)
	}
	boutiqueService, err := boutiques.NewService(boutiques.NewRepository(adminDB.DB()))
	if err != nil {
		fail("failed to create boutique service", err)
	}
	authParams.Users = userRepo
	authService, err := auth.NewService(authParams)
	if err != nil {
		fail("failed to create auth service", err)
	}

	deps.Services = routes.Services{
		Identities: identityService,
		Users:      userService,
		Roles:      roleService,
		Articles:   articleService,
		Boutiques:  boutiqueService,
		Auth:       authService,
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	runCtx := logg.WithFields(ctx, map[string]any{
		"env":          cfg.App.Env,
		"addr":         addr,
		"instance":     instance.GetID(),
		"redis":        cfg.Redis.Enabled(),
		"require_auth": cfg.FeatureFlags.RequireAuth,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(runCtx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			fail("api server stopped unexpectedly", err)
		}
	case <-ctx.Done():
		logg.Info(runCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(shutdownCtx, "graceful shutdown failed", err)
		}
	}

	closeAll()
}
