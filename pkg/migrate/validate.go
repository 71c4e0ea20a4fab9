package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	sqlFileRe     = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)
	uniqueIndexRe = regexp.MustCompile(`(?s)CREATE UNIQUE INDEX[^;]*;`)
)

// ValidateAll validates every set under root (normally DefaultDir).
func ValidateAll(root string) error {
	for _, set := range Sets() {
		if err := ValidateDir(filepath.Join(root, filepath.Base(set.Dir))); err != nil {
			return fmt.Errorf("%s: %w", set.Name, err)
		}
	}
	return nil
}

// ValidateDir validates migration filenames, goose headers and partial unique
// indexes on del for one set directory.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	seen := map[string]string{} // version -> filename

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}

		version := m[1]
		if prev, ok := seen[version]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
		}
		seen[version] = name

		full := filepath.Join(dir, name)
		b, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("read file %q: %w", full, err)
		}

		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") {
			return fmt.Errorf("migration %q missing \"-- +goose Up\"", name)
		}
		if !strings.Contains(txt, "-- +goose Down") {
			return fmt.Errorf("migration %q missing \"-- +goose Down\"", name)
		}
		for _, stmt := range uniqueIndexRe.FindAllString(txt, -1) {
			if !strings.Contains(stmt, "WHERE del = false") {
				return fmt.Errorf("migration %q has a unique index not scoped to live rows: %s", name, strings.TrimSpace(stmt))
			}
		}
	}

	// an empty set is allowed
	return nil
}
