package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMigrationSetsValidate(t *testing.T) {
	if err := ValidateAll("migrations"); err != nil {
		t.Fatalf("validate migrations: %v", err)
	}
}

func TestMigrationsContainPartialUniqueIndexes(t *testing.T) {
	checks := map[string][]string{
		"admin": {
			"CREATE TABLE IF NOT EXISTS role",
			"CREATE UNIQUE INDEX IF NOT EXISTS ux_role_nom_live",
			"CREATE UNIQUE INDEX IF NOT EXISTS ux_role_acronyme_live",
			"CREATE TABLE IF NOT EXISTS articles",
			"prix_articles        NUMERIC(12,2) NOT NULL",
			"CREATE UNIQUE INDEX IF NOT EXISTS ux_articles_nom_live",
			"CREATE TABLE IF NOT EXISTS boutique",
			"CREATE UNIQUE INDEX IF NOT EXISTS ux_boutique_nom_live",
		},
		"users": {
			"CREATE TABLE IF NOT EXISTS identity",
			"CREATE UNIQUE INDEX IF NOT EXISTS ux_identity_email_live",
			"CREATE UNIQUE INDEX IF NOT EXISTS ux_identity_telephone_live",
			"CREATE TABLE IF NOT EXISTS user_admin",
			"CREATE UNIQUE INDEX IF NOT EXISTS ux_user_admin_username_live",
		},
	}

	for set, wants := range checks {
		content := readSet(t, set)
		for _, sub := range wants {
			if !strings.Contains(content, sub) {
				t.Errorf("%s migrations missing %q", set, sub)
			}
		}
	}
}

func TestEmbeddedSetsMatchDisk(t *testing.T) {
	for _, set := range Sets() {
		entries, err := embedded.ReadDir(set.Dir)
		if err != nil {
			t.Fatalf("read embedded %s: %v", set.Dir, err)
		}
		onDisk, err := os.ReadDir(set.Dir)
		if err != nil {
			t.Fatalf("read disk %s: %v", set.Dir, err)
		}
		if len(entries) == 0 || len(entries) != len(onDisk) {
			t.Fatalf("set %s: embedded %d files, disk %d", set.Name, len(entries), len(onDisk))
		}
	}
}

func TestSetByName(t *testing.T) {
	if s, err := SetByName("users"); err != nil || s.Table != "goose_users_version" {
		t.Fatalf("unexpected users set %+v (%v)", s, err)
	}
	if _, err := SetByName("orders"); err == nil {
		t.Fatal("expected error for unknown set")
	}
}

func TestCreateSQLMigration(t *testing.T) {
	root := t.TempDir()
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	path, err := CreateSQLMigration(root, AdminSet, "Add Boutique City!", now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if want := filepath.Join(root, "admin", "20250304050607_add_boutique_city.sql"); path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	if err := ValidateDir(filepath.Dir(path)); err != nil {
		t.Fatalf("generated migration does not validate: %v", err)
	}
	if _, err := CreateSQLMigration(root, AdminSet, "add boutique city", now); err == nil {
		t.Fatal("expected duplicate migration error")
	}
	if _, err := CreateSQLMigration(root, AdminSet, "!!!", now); err == nil {
		t.Fatal("expected error for empty sanitized name")
	}
}

func TestValidateDirRejectsGlobalUniqueIndex(t *testing.T) {
	dir := t.TempDir()
	body := "-- +goose Up\nCREATE UNIQUE INDEX ux_role_nom ON role (nom_role);\n-- +goose Down\nDROP INDEX ux_role_nom;\n"
	if err := os.WriteFile(filepath.Join(dir, "20250101000000_bad.sql"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected unscoped unique index to be rejected")
	}
}

func readSet(t *testing.T, set string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", set, "*.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	var b strings.Builder
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			t.Fatalf("read %s: %v", m, err)
		}
		b.Write(data)
	}
	return b.String()
}
