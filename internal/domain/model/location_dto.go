package model

// FavoriteCityDTO is the request body for adding a favorite city.
type FavoriteCityDTO struct {
	CityName string `json:"cityName"`
}

// RenameFavoriteDTO is the request body for renaming a favorite city.
type RenameFavoriteDTO struct {
	NewName string `json:"newName"`
}

// TemperatureUnitDTO is the request body for switching the display unit.
type TemperatureUnitDTO struct {
	Unit string `json:"unit"`
}

// DefaultCityDTO is the request body for changing the default city.
type DefaultCityDTO struct {
	CityName string `json:"cityName"`
}
