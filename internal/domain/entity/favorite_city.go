package entity

// FavoriteCity is a row of the legacy flat favorites table. Superseded by
// Location but still served to existing callers.
type FavoriteCity struct {
	ID       int64  `json:"id"`
	CityName string `json:"cityName"`
}
