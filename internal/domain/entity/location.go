package entity

// Location is a saved place the user tracks weather for. The id is assigned by
// the store on insert and never changes afterwards.
type Location struct {
	ID          int64   `json:"id"`
	CityName    string  `json:"cityName" validate:"required"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Tag         string  `json:"tag"`
	IsDefault   bool    `json:"isDefault"`
	SortOrder   int     `json:"sortOrder"`
	LastUpdated int64   `json:"lastUpdated"` // epoch millis, 0 = never
}
