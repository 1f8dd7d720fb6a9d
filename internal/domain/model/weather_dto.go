package model

import (
	"fmt"

	"weather-app/internal/domain/entity"
)

// Source tells the caller whether a weather view came from a live fetch or
// from the offline cache slot.
type Source string

const (
	SourceLive   Source = "live"
	SourceCached Source = "cached"
)

// WeatherView is what the coordinator hands back to the presentation layer.
// Temperature and Condition are display strings because that is all the cache
// slot retains; Snapshot is only present for live results.
type WeatherView struct {
	CityName    string                  `json:"cityName"`
	Temperature string                  `json:"temperature"`
	Condition   string                  `json:"condition"`
	UpdatedAt   int64                   `json:"updatedAt"` // epoch millis, 0 = unknown
	Source      Source                  `json:"source"`
	Snapshot    *entity.WeatherSnapshot `json:"snapshot,omitempty"`
	// FetchError carries the failure that forced a cached fallback.
	FetchError string `json:"fetchError,omitempty"`
}

// CitySearchResult is one geocoding hit for a free-text query.
type CitySearchResult struct {
	Name        string  `json:"name"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
}

// WeatherQuery addresses a fetch either by free-text city name or by
// coordinates. Coordinates win when HasCoordinates is set.
type WeatherQuery struct {
	City           string
	Latitude       float64
	Longitude      float64
	HasCoordinates bool
}

// Key returns the dedupe key for in-flight request coalescing.
func (q WeatherQuery) Key() string {
	if q.HasCoordinates {
		return coordKey(q.Latitude, q.Longitude)
	}
	return "city:" + q.City
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("coord:%.4f,%.4f", lat, lon)
}
