package api

import (
	"context"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// WeatherGateway defines the interface for calls against the remote weather provider.
type WeatherGateway interface {
	// FetchCurrentByCity fetches current conditions for a city by name.
	FetchCurrentByCity(ctx context.Context, city string) (*entity.WeatherSnapshot, error)

	// FetchCurrentByCoordinates fetches current conditions for a coordinate pair.
	FetchCurrentByCoordinates(ctx context.Context, lat, lon float64) (*entity.WeatherSnapshot, error)

	// FetchForecast fetches the multi-day forecast for a city, aggregated
	// into calendar days in chronological order, at most five days.
	FetchForecast(ctx context.Context, city string) ([]entity.ForecastDay, error)

	// SearchCities resolves a free-text query into geocoding candidates.
	SearchCities(ctx context.Context, query string, limit int) ([]model.CitySearchResult, error)
}
