package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/db"
	"github.com/angelmondragon/shopadmin-backend/pkg/logger"
	"github.com/angelmondragon/shopadmin-backend/pkg/migrate"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|create|validate")
	setName := flag.String("set", "all", "migration set: admin|users|all")
	dir := flag.String("dir", migrate.DefaultDir, "migrations root directory (create/validate)")
	name := flag.String("name", "", "migration name (for create)")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")

	flag.Parse()

	sets, err := resolveSets(*setName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// create and validate only touch the filesystem
	switch *cmd {
	case "create":
		if *name == "" || len(sets) != 1 {
			fmt.Fprintln(os.Stderr, "create needs -name and a single -set")
			os.Exit(1)
		}
		path, err := migrate.CreateSQLMigration(*dir, sets[0], *name, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create migration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("created migration:", path)
		return

	case "validate":
		for _, set := range sets {
			if err := migrate.ValidateDir(filepath.Join(*dir, filepath.Base(set.Dir))); err != nil {
				fmt.Fprintf(os.Stderr, "migration validation failed (%s): %v\n", set.Name, err)
				os.Exit(1)
			}
		}
		fmt.Println("migration validation passed")
		return
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(ctx, map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
		"set": *setName,
	})

	for _, set := range sets {
		dbCfg := cfg.AdminDB
		if set.Name == migrate.UsersSet.Name {
			dbCfg = cfg.UsersDB
		}
		if err := runSet(ctx, logg, dbCfg, set, *cmd, *version); err != nil {
			fmt.Fprintf(os.Stderr, "goose %s failed (%s): %v\n", *cmd, set.Name, err)
			os.Exit(1)
		}
	}
}

func runSet(ctx context.Context, logg *logger.Logger, dbCfg config.DBConfig, set migrate.Set, cmd, version string) error {
	client, err := db.New(ctx, set.Name, dbCfg, logg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	if dbCfg.IsSQLite() {
		if cmd != "up" {
			return fmt.Errorf("sqlite databases only support up")
		}
		return migrate.Up(ctx, logg, migrate.Target{Client: client, Set: set, SQLite: true})
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return err
	}

	logg.Info(ctx, "migrate ready")

	switch cmd {
	case "up", "down", "status":
		return migrate.Run(ctx, sqlDB, set, cmd)
	case "version":
		if version == "" {
			return fmt.Errorf("missing -version for version command")
		}
		return migrate.MigrateToVersion(ctx, sqlDB, set, version)
	default:
		return fmt.Errorf("unknown -cmd value: %s", cmd)
	}
}

func resolveSets(name string) ([]migrate.Set, error) {
	if name == "" || name == "all" {
		return migrate.Sets(), nil
	}
	set, err := migrate.SetByName(name)
	if err != nil {
		return nil, err
	}
	return []migrate.Set{set}, nil
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
