package weather

import (
	"context"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

type UseCase interface {
	// GetWeather resolves current conditions for a query, falling back to the
	// cached snapshot when offline or when the network fetch fails.
	GetWeather(ctx context.Context, query model.WeatherQuery) (*model.WeatherView, error)

	// GetForecast returns up to five daily forecast aggregates for a city.
	GetForecast(ctx context.Context, city string) ([]entity.ForecastDay, error)

	// SearchCities looks up candidate cities by free-text name.
	SearchCities(ctx context.Context, query string, limit int) ([]model.CitySearchResult, error)

	// ResolveAndFetch geocodes a free-text query to its best match and fetches
	// current conditions at the resolved coordinates.
	ResolveAndFetch(ctx context.Context, query string) (*model.WeatherView, error)

	// RefreshDefaultLocation re-fetches conditions for the default location so
	// the cache stays warm. Used by the background scheduler.
	RefreshDefaultLocation(ctx context.Context) error
}

// Clock abstracts time for cache timestamping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
