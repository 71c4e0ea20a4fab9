package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/pressly/goose/v3"
)

// DefaultDir is the on-disk location of the migration sets, relative to the
// repository root. create and validate work against it.
const DefaultDir = "pkg/migrate/migrations"

//go:embed migrations/*/*.sql
var embedded embed.FS

// Set is one independently versioned group of migrations.
type Set struct {
	Name  string
	Dir   string
	Table string
}

var (
	// AdminSet holds the role, articles and boutique tables.
	AdminSet = Set{Name: "admin", Dir: "migrations/admin", Table: "goose_admin_version"}
	// UsersSet holds the identity and user_admin tables.
	UsersSet = Set{Name: "users", Dir: "migrations/users", Table: "goose_users_version"}
)

// Sets returns every migration set.
func Sets() []Set {
	return []Set{AdminSet, UsersSet}
}

// SetByName resolves "admin" or "users".
func SetByName(name string) (Set, error) {
	for _, s := range Sets() {
		if s.Name == name {
			return s, nil
		}
	}
	return Set{}, fmt.Errorf("unknown migration set %q", name)
}

// goose keeps dialect, table and filesystem in package globals.
var gooseMu sync.Mutex

func prepare(set Set) error {
	goose.SetBaseFS(embedded)
	goose.SetTableName(set.Table)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// Run executes a standard goose command for the set.
func Run(ctx context.Context, db *sql.DB, set Set, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if set.Dir == "" {
		return fmt.Errorf("migration set %q has no dir", set.Name)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := prepare(set); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, set.Dir, args...); err != nil {
		return fmt.Errorf("goose %s (%s): %w", command, set.Name, err)
	}
	return nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, set Set, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := prepare(set); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil
	case current < target:
		if err := goose.UpToContext(ctx, db, set.Dir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil
	default:
		if err := goose.DownToContext(ctx, db, set.Dir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}
