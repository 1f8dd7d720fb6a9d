package settings

import (
	"weather-app/internal/domain/gateway/db"
)

// Preferences is the user-facing view of the persisted settings.
type Preferences struct {
	TemperatureUnit db.TemperatureUnit `json:"temperatureUnit"`
	DefaultCity     string             `json:"defaultCity"`
	HasCachedData   bool               `json:"hasCachedData"`
	LastUpdateTime  int64              `json:"lastUpdateTime"`
}

type UseCase interface {
	// GetPreferences returns the current settings together with cache status.
	GetPreferences() (*Preferences, error)

	// SetTemperatureUnit switches the display unit, rejecting unknown units.
	SetTemperatureUnit(unit string) error

	// SetDefaultCity changes the city loaded when no explicit query is given.
	SetDefaultCity(name string) error

	// ClearCache drops the offline weather cache slot.
	ClearCache() error

	// Reset wipes every preference back to defaults.
	Reset() error
}
