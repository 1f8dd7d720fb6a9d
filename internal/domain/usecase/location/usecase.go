package location

import (
	"weather-app/internal/domain/entity"
)

type UseCase interface {
	// AddFavoriteCity adds a name to the legacy flat favorites list.
	// Empty names are rejected; duplicates are a uniqueness violation.
	AddFavoriteCity(name string) error

	// GetFavoriteCities lists favorite names alphabetically.
	GetFavoriteCities() ([]string, error)

	// RenameFavoriteCity renames an existing favorite.
	RenameFavoriteCity(oldName, newName string) error

	// RemoveFavoriteCity deletes a favorite by name.
	RemoveFavoriteCity(name string) error

	// AddLocation validates and stores a location, returning it with the
	// assigned id.
	AddLocation(loc entity.Location) (*entity.Location, error)

	// GetLocations lists locations ordered by (sortOrder, id).
	GetLocations() ([]entity.Location, error)

	// GetLocation fetches one location by id.
	GetLocation(id int64) (*entity.Location, error)

	// GetDefaultLocation returns the flagged default, or nil when none is set.
	GetDefaultLocation() (*entity.Location, error)

	// UpdateLocation validates and replaces the full record keyed by id.
	UpdateLocation(loc entity.Location) error

	// PromoteDefault makes the target the single default location.
	PromoteDefault(id int64) error

	// RemoveLocation deletes one location by id.
	RemoveLocation(id int64) error

	// ClearLocations deletes every location.
	ClearLocations() error

	// CountLocations returns the number of stored locations.
	CountLocations() (int, error)
}
