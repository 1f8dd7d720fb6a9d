package db

import (
	"path/filepath"
	"testing"

	"weather-app/internal/infra/database/sqlite"
)

func newTestSettingsGateway(t *testing.T) *SQLiteSettingsGateway {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test_preferences.db")

	database, err := sqlite.OpenPreferences(dbPath)
	if err != nil {
		t.Fatalf("OpenPreferences failed: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return NewSQLiteSettingsGateway(database)
}

func TestSettingsDefaults(t *testing.T) {
	gateway := newTestSettingsGateway(t)

	unit, err := gateway.GetTemperatureUnit()
	if err != nil {
		t.Fatalf("GetTemperatureUnit failed: %v", err)
	}
	if unit != UnitCelsius {
		t.Fatalf("expected default unit C, got %q", unit)
	}

	celsius, err := gateway.IsCelsius()
	if err != nil {
		t.Fatalf("IsCelsius failed: %v", err)
	}
	if !celsius {
		t.Fatal("expected IsCelsius to default to true")
	}

	city, err := gateway.GetDefaultCity()
	if err != nil {
		t.Fatalf("GetDefaultCity failed: %v", err)
	}
	if city != DefaultCity {
		t.Fatalf("expected default city %q, got %q", DefaultCity, city)
	}

	temp, err := gateway.GetCachedTemperature()
	if err != nil {
		t.Fatalf("GetCachedTemperature failed: %v", err)
	}
	if temp != "--" {
		t.Fatalf("expected placeholder temperature, got %q", temp)
	}

	condition, err := gateway.GetCachedCondition()
	if err != nil {
		t.Fatalf("GetCachedCondition failed: %v", err)
	}
	if condition != "..." {
		t.Fatalf("expected placeholder condition, got %q", condition)
	}

	lastUpdate, err := gateway.GetLastUpdateTime()
	if err != nil {
		t.Fatalf("GetLastUpdateTime failed: %v", err)
	}
	if lastUpdate != 0 {
		t.Fatalf("expected last update time 0, got %d", lastUpdate)
	}

	hasCache, err := gateway.HasCachedData()
	if err != nil {
		t.Fatalf("HasCachedData failed: %v", err)
	}
	if hasCache {
		t.Fatal("expected no cached data on a fresh store")
	}
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_preferences.db")

	database, err := sqlite.OpenPreferences(dbPath)
	if err != nil {
		t.Fatalf("OpenPreferences failed: %v", err)
	}
	gateway := NewSQLiteSettingsGateway(database)

	if err := gateway.SetTemperatureUnit(UnitFahrenheit); err != nil {
		t.Fatalf("SetTemperatureUnit failed: %v", err)
	}
	if err := gateway.SetDefaultCity("Da Nang"); err != nil {
		t.Fatalf("SetDefaultCity failed: %v", err)
	}
	if err := database.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	database, err = sqlite.OpenPreferences(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	gateway = NewSQLiteSettingsGateway(database)

	unit, err := gateway.GetTemperatureUnit()
	if err != nil {
		t.Fatalf("GetTemperatureUnit failed: %v", err)
	}
	if unit != UnitFahrenheit {
		t.Fatalf("expected unit F after reopen, got %q", unit)
	}

	city, err := gateway.GetDefaultCity()
	if err != nil {
		t.Fatalf("GetDefaultCity failed: %v", err)
	}
	if city != "Da Nang" {
		t.Fatalf("expected default city to persist, got %q", city)
	}
}

func TestCacheSlotOverwrite(t *testing.T) {
	gateway := newTestSettingsGateway(t)

	if err := gateway.CacheWeatherData("Hanoi", "23.5°C", "light rain"); err != nil {
		t.Fatalf("CacheWeatherData failed: %v", err)
	}
	if err := gateway.CacheWeatherData("Paris", "18.0°C", "clear sky"); err != nil {
		t.Fatalf("CacheWeatherData failed: %v", err)
	}

	city, err := gateway.GetCachedCity()
	if err != nil {
		t.Fatalf("GetCachedCity failed: %v", err)
	}
	if city != "Paris" {
		t.Fatalf("expected the slot to hold the latest city, got %q", city)
	}

	temp, err := gateway.GetCachedTemperature()
	if err != nil {
		t.Fatalf("GetCachedTemperature failed: %v", err)
	}
	if temp != "18.0°C" {
		t.Fatalf("expected latest temperature, got %q", temp)
	}

	hasCache, err := gateway.HasCachedData()
	if err != nil {
		t.Fatalf("HasCachedData failed: %v", err)
	}
	if !hasCache {
		t.Fatal("expected cached data after CacheWeatherData")
	}
}

func TestClearCacheKeepsPreferences(t *testing.T) {
	gateway := newTestSettingsGateway(t)

	if err := gateway.SetTemperatureUnit(UnitFahrenheit); err != nil {
		t.Fatalf("SetTemperatureUnit failed: %v", err)
	}
	if err := gateway.CacheWeatherData("Hanoi", "23.5°C", "light rain"); err != nil {
		t.Fatalf("CacheWeatherData failed: %v", err)
	}
	if err := gateway.SetLastUpdateTime(1700000000000); err != nil {
		t.Fatalf("SetLastUpdateTime failed: %v", err)
	}

	if err := gateway.ClearCache(); err != nil {
		t.Fatalf("ClearCache failed: %v", err)
	}

	hasCache, err := gateway.HasCachedData()
	if err != nil {
		t.Fatalf("HasCachedData failed: %v", err)
	}
	if hasCache {
		t.Fatal("expected no cached data after ClearCache")
	}

	lastUpdate, err := gateway.GetLastUpdateTime()
	if err != nil {
		t.Fatalf("GetLastUpdateTime failed: %v", err)
	}
	if lastUpdate != 0 {
		t.Fatalf("expected last update time reset, got %d", lastUpdate)
	}

	unit, err := gateway.GetTemperatureUnit()
	if err != nil {
		t.Fatalf("GetTemperatureUnit failed: %v", err)
	}
	if unit != UnitFahrenheit {
		t.Fatalf("expected unit preference to survive ClearCache, got %q", unit)
	}
}

func TestClearAllResetsEverything(t *testing.T) {
	gateway := newTestSettingsGateway(t)

	if err := gateway.SetTemperatureUnit(UnitFahrenheit); err != nil {
		t.Fatalf("SetTemperatureUnit failed: %v", err)
	}
	if err := gateway.SetDefaultCity("Paris"); err != nil {
		t.Fatalf("SetDefaultCity failed: %v", err)
	}
	if err := gateway.CacheWeatherData("Paris", "18.0°C", "clear sky"); err != nil {
		t.Fatalf("CacheWeatherData failed: %v", err)
	}

	if err := gateway.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	unit, err := gateway.GetTemperatureUnit()
	if err != nil {
		t.Fatalf("GetTemperatureUnit failed: %v", err)
	}
	if unit != UnitCelsius {
		t.Fatalf("expected unit back to default, got %q", unit)
	}

	city, err := gateway.GetDefaultCity()
	if err != nil {
		t.Fatalf("GetDefaultCity failed: %v", err)
	}
	if city != DefaultCity {
		t.Fatalf("expected default city back to %q, got %q", DefaultCity, city)
	}

	hasCache, err := gateway.HasCachedData()
	if err != nil {
		t.Fatalf("HasCachedData failed: %v", err)
	}
	if hasCache {
		t.Fatal("expected no cached data after ClearAll")
	}
}
