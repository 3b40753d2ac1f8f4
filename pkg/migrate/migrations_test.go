package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arimendoza/coffeehaus-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestCartsMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_carts_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS carts",
		"items       jsonb NOT NULL DEFAULT '[]'::jsonb",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_owner_email",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestFavoritesMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_favorites_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS favorites",
		"CREATE UNIQUE INDEX IF NOT EXISTS favorites_owner_product_key",
		"tags         text[] NOT NULL DEFAULT '{}'",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration file matching %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
