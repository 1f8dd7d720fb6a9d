package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestOpenCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_weather.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"favorite_cities", "locations"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %q to exist: %v", table, err)
		}
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("reading user_version failed: %v", err)
	}
	if version != schemaVersion {
		t.Fatalf("expected schema version %d, got %d", schemaVersion, version)
	}
}

func TestMigrateFromV1PreservesFavorites(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_weather.db")

	// Build a version-1 database by hand: favorites only, no locations.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	if _, err := db.Exec(createFavoriteCities); err != nil {
		t.Fatalf("creating v1 schema failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO favorite_cities (city_name) VALUES ('Hanoi'), ('Paris')"); err != nil {
		t.Fatalf("seeding favorites failed: %v", err)
	}
	if _, err := db.Exec("PRAGMA user_version = 1"); err != nil {
		t.Fatalf("setting user_version failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("closing seed database failed: %v", err)
	}

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open on a v1 file failed: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM favorite_cities").Scan(&count); err != nil {
		t.Fatalf("counting favorites failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 favorites to survive migration, got %d", count)
	}

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='locations'").Scan(&name)
	if err != nil {
		t.Fatalf("expected locations table after migration: %v", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("reading user_version failed: %v", err)
	}
	if version != schemaVersion {
		t.Fatalf("expected schema version %d after migration, got %d", schemaVersion, version)
	}
}

func TestOpenPreferencesCreatesKeyValueTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_preferences.db")

	db, err := OpenPreferences(dbPath)
	if err != nil {
		t.Fatalf("OpenPreferences failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("INSERT INTO preferences (key, value) VALUES ('k', 'v')"); err != nil {
		t.Fatalf("inserting into preferences failed: %v", err)
	}

	var value string
	if err := db.QueryRow("SELECT value FROM preferences WHERE key='k'").Scan(&value); err != nil {
		t.Fatalf("reading preference failed: %v", err)
	}
	if value != "v" {
		t.Fatalf("expected value 'v', got %q", value)
	}
}
