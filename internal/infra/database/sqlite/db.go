package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"weather-app/pkg/log"

	_ "modernc.org/sqlite"
)

// schemaVersion is tracked with PRAGMA user_version. Version 1 carries only
// the legacy favorite_cities table; version 2 adds locations alongside it.
const schemaVersion = 2

const createFavoriteCities = `CREATE TABLE IF NOT EXISTS favorite_cities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	city_name TEXT NOT NULL UNIQUE
)`

const createLocations = `CREATE TABLE IF NOT EXISTS locations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	city_name TEXT NOT NULL,
	country_code TEXT,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL,
	tag TEXT,
	is_default INTEGER DEFAULT 0,
	sort_order INTEGER DEFAULT 0,
	last_updated INTEGER DEFAULT 0
)`

const createPreferences = `CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Open opens (or creates) the weather database at path and migrates it to the
// current schema version.
func Open(path string) (*sql.DB, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// OpenPreferences opens (or creates) the preferences key/value database.
// It lives in its own file so wiping one store never touches the other.
func OpenPreferences(path string) (*sql.DB, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(createPreferences); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}

	return db, nil
}

func open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps short concurrent reads from blocking on writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Warnf("could not set WAL mode: %v", err)
	}

	return db, nil
}

// Migrate brings the database up to schemaVersion. Each step is applied in
// order so a version-1 file gains the locations table without its
// favorite_cities rows being touched.
func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version < 1 {
		if _, err := db.Exec(createFavoriteCities); err != nil {
			return fmt.Errorf("migration to v1 failed: %w", err)
		}
	}

	if version < 2 {
		if _, err := db.Exec(createLocations); err != nil {
			return fmt.Errorf("migration to v2 failed: %w", err)
		}
	}

	if version < schemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		log.Infof("database migrated from schema v%d to v%d", version, schemaVersion)
	}

	return nil
}
