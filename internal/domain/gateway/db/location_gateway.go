package db

import (
	"weather-app/internal/domain/entity"
)

// LocationGateway is the persistence boundary for saved locations and the
// legacy flat favorites list. Both tables stay live: old callers read the
// flat list, new callers use structured locations.
type LocationGateway interface {
	// Legacy favorite_cities operations. AddCity reports false (no error)
	// when the name is already present; the uniqueness check is exact and
	// case-sensitive.
	AddCity(name string) (bool, error)
	GetAllCities() ([]string, error)
	CityExists(name string) (bool, error)
	DeleteCity(name string) (bool, error)
	UpdateCity(oldName, newName string) (bool, error)
	GetCityCount() (int, error)
	DeleteAllCities() error

	// Structured location operations. AddLocation performs no name
	// uniqueness check; duplicates are allowed.
	AddLocation(loc entity.Location) (int64, error)
	GetAllLocations() ([]entity.Location, error)
	GetLocationByID(id int64) (*entity.Location, error)
	GetDefaultLocation() (*entity.Location, error)
	UpdateLocation(loc entity.Location) (bool, error)

	// PromoteDefault atomically demotes every location and promotes the
	// target, in one transaction. A missing id rolls the whole thing back
	// so the previous default survives.
	PromoteDefault(id int64) error

	DeleteLocation(id int64) (bool, error)
	DeleteAllLocations() error
	GetLocationCount() (int, error)
}
