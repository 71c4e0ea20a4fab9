package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/db"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/angelmondragon/shopadmin-backend/pkg/logger"
)

// Target pairs a database client with the migration set it owns.
type Target struct {
	Client *db.Client
	Set    Set
	SQLite bool
}

// Targets maps the configured databases onto their migration sets.
func Targets(cfg *config.Config, admin, users *db.Client) []Target {
	return []Target{
		{Client: admin, Set: AdminSet, SQLite: cfg.AdminDB.IsSQLite()},
		{Client: users, Set: UsersSet, SQLite: cfg.UsersDB.IsSQLite()},
	}
}

// MaybeRunDev executes migrations automatically when the app is running in dev mode and
// the feature flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, targets []Target) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	for _, target := range targets {
		if err := Up(ctx, logg, target); err != nil {
			return err
		}
	}
	return nil
}

// Up brings one database to the latest schema. Postgres databases run the
// goose set; sqlite databases are auto-migrated from the models.
func Up(ctx context.Context, logg *logger.Logger, target Target) error {
	if target.Client == nil {
		return fmt.Errorf("%s database client is required", target.Set.Name)
	}
	ctx = logg.WithFields(ctx, map[string]any{"set": target.Set.Name, "sqlite": target.SQLite})

	if target.SQLite {
		logg.Info(ctx, "auto-migrating sqlite schema")
		if err := target.Client.DB().WithContext(ctx).AutoMigrate(modelsFor(target.Set)...); err != nil {
			return fmt.Errorf("auto-migrate %s: %w", target.Set.Name, err)
		}
		return nil
	}

	sqlDB, err := target.Client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	logg.Info(ctx, "running goose migrations")
	if err := Run(ctx, sqlDB, target.Set, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "goose migrations completed")
	return nil
}

func modelsFor(set Set) []any {
	if set.Name == UsersSet.Name {
		return models.UsersDB()
	}
	return models.AdminDB()
}
