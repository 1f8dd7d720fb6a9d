package weather

import (
	"context"
	"fmt"
	"strings"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/db"
	"weather-app/internal/domain/model"
	"weather-app/internal/infra/network"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"

	"golang.org/x/sync/singleflight"
)

type weatherUseCase struct {
	apiGateway      api.WeatherGateway
	settingsGateway db.SettingsGateway
	locationGateway db.LocationGateway
	connectivity    network.ConnectivityChecker
	clock           Clock
	group           singleflight.Group
}

// NewWeatherUseCase wires the cache coordinator. A nil clock means wall time.
func NewWeatherUseCase(
	apiGateway api.WeatherGateway,
	settingsGateway db.SettingsGateway,
	locationGateway db.LocationGateway,
	connectivity network.ConnectivityChecker,
	clock Clock,
) UseCase {
	if clock == nil {
		clock = systemClock{}
	}
	return &weatherUseCase{
		apiGateway:      apiGateway,
		settingsGateway: settingsGateway,
		locationGateway: locationGateway,
		connectivity:    connectivity,
		clock:           clock,
	}
}

func (u *weatherUseCase) GetWeather(ctx context.Context, query model.WeatherQuery) (*model.WeatherView, error) {
	if !query.HasCoordinates && strings.TrimSpace(query.City) == "" {
		city, err := u.settingsGateway.GetDefaultCity()
		if err != nil {
			return nil, fmt.Errorf("reading default city: %w", err)
		}
		query.City = city
	}

	if !u.connectivity.IsNetworkAvailable() {
		view, err := u.cachedView(msg.GetMessage("weather.error.no-connectivity"))
		if err != nil {
			return nil, err
		}
		if view != nil {
			return view, nil
		}
		return nil, model.NewError(model.KindNoConnectivity, msg.GetMessage("weather.error.no-connectivity"))
	}

	result, err, _ := u.group.Do(query.Key(), func() (any, error) {
		return u.fetchAndCache(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	// Coalesced callers all receive the same result value; hand each one its
	// own copy so nobody can mutate a view another caller is reading.
	view := *result.(*model.WeatherView)
	return &view, nil
}

func (u *weatherUseCase) GetForecast(ctx context.Context, city string) ([]entity.ForecastDay, error) {
	if strings.TrimSpace(city) == "" {
		defaultCity, err := u.settingsGateway.GetDefaultCity()
		if err != nil {
			return nil, fmt.Errorf("reading default city: %w", err)
		}
		city = defaultCity
	}
	if !u.connectivity.IsNetworkAvailable() {
		return nil, model.NewError(model.KindNoConnectivity, msg.GetMessage("weather.error.no-connectivity"))
	}

	days, err := u.apiGateway.FetchForecast(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast for %q: %w", city, err)
	}
	return days, nil
}

func (u *weatherUseCase) SearchCities(ctx context.Context, query string, limit int) ([]model.CitySearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, model.NewError(model.KindValidation, "search query must not be empty")
	}
	if !u.connectivity.IsNetworkAvailable() {
		return nil, model.NewError(model.KindNoConnectivity, msg.GetMessage("weather.error.no-connectivity"))
	}

	results, err := u.apiGateway.SearchCities(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching cities for %q: %w", query, err)
	}
	return results, nil
}

func (u *weatherUseCase) ResolveAndFetch(ctx context.Context, query string) (*model.WeatherView, error) {
	matches, err := u.SearchCities(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, model.NewError(model.KindNotFound, msg.GetMessage("weather.error.not-found"))
	}

	best := matches[0]
	view, err := u.GetWeather(ctx, model.WeatherQuery{
		Latitude:       best.Latitude,
		Longitude:      best.Longitude,
		HasCoordinates: true,
	})
	if err != nil {
		return nil, err
	}
	if view.Source == model.SourceLive {
		view.CityName = best.DisplayName
	}
	return view, nil
}

func (u *weatherUseCase) RefreshDefaultLocation(ctx context.Context) error {
	query := model.WeatherQuery{}

	loc, err := u.locationGateway.GetDefaultLocation()
	if err != nil {
		return fmt.Errorf("reading default location: %w", err)
	}
	if loc != nil {
		query.Latitude = loc.Latitude
		query.Longitude = loc.Longitude
		query.HasCoordinates = true
	}

	view, err := u.GetWeather(ctx, query)
	if err != nil {
		return fmt.Errorf("refreshing weather cache: %w", err)
	}
	if view.Source == model.SourceCached {
		log.Warnf("cache refresh served stale data for %s: %s", view.CityName, view.FetchError)
	}
	return nil
}

// fetchAndCache performs the live fetch, writes the fresh result through to
// the cache slot, and falls back to the cache on transport failures. API
// failures with a definitive status (bad city, bad key, quota) never fall
// back: the cache would mask an error the caller must see.
func (u *weatherUseCase) fetchAndCache(ctx context.Context, query model.WeatherQuery) (*model.WeatherView, error) {
	var snapshot *entity.WeatherSnapshot
	var err error
	if query.HasCoordinates {
		snapshot, err = u.apiGateway.FetchCurrentByCoordinates(ctx, query.Latitude, query.Longitude)
	} else {
		snapshot, err = u.apiGateway.FetchCurrentByCity(ctx, query.City)
	}
	if err != nil {
		if model.IsKind(err, model.KindNetwork) {
			view, cacheErr := u.cachedView(err.Error())
			if cacheErr != nil {
				return nil, cacheErr
			}
			if view != nil {
				log.Warnf("%s: live fetch for %s failed: %v", msg.GetMessage("weather.error.using-cache"), view.CityName, err)
				return view, nil
			}
		}
		return nil, err
	}

	tempText, err := u.formatTemperature(snapshot)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	view := &model.WeatherView{
		CityName:    snapshot.CityName,
		Temperature: tempText,
		Condition:   snapshot.Description,
		UpdatedAt:   now.UnixMilli(),
		Source:      model.SourceLive,
		Snapshot:    snapshot,
	}

	if err := u.settingsGateway.CacheWeatherData(view.CityName, view.Temperature, view.Condition); err != nil {
		return nil, fmt.Errorf("caching weather data: %w", err)
	}
	if err := u.settingsGateway.SetLastUpdateTime(now.UnixMilli()); err != nil {
		return nil, fmt.Errorf("recording cache timestamp: %w", err)
	}
	return view, nil
}

// cachedView materializes the offline cache slot, or nil when it is empty.
func (u *weatherUseCase) cachedView(fetchError string) (*model.WeatherView, error) {
	hasCache, err := u.settingsGateway.HasCachedData()
	if err != nil {
		return nil, fmt.Errorf("checking weather cache: %w", err)
	}
	if !hasCache {
		return nil, nil
	}

	city, err := u.settingsGateway.GetCachedCity()
	if err != nil {
		return nil, fmt.Errorf("reading weather cache: %w", err)
	}
	temperature, err := u.settingsGateway.GetCachedTemperature()
	if err != nil {
		return nil, fmt.Errorf("reading weather cache: %w", err)
	}
	condition, err := u.settingsGateway.GetCachedCondition()
	if err != nil {
		return nil, fmt.Errorf("reading weather cache: %w", err)
	}
	updatedAt, err := u.settingsGateway.GetLastUpdateTime()
	if err != nil {
		return nil, fmt.Errorf("reading weather cache: %w", err)
	}

	return &model.WeatherView{
		CityName:    city,
		Temperature: temperature,
		Condition:   condition,
		UpdatedAt:   updatedAt,
		Source:      model.SourceCached,
		FetchError:  fetchError,
	}, nil
}

func (u *weatherUseCase) formatTemperature(snapshot *entity.WeatherSnapshot) (string, error) {
	celsius, err := u.settingsGateway.IsCelsius()
	if err != nil {
		return "", fmt.Errorf("reading temperature unit: %w", err)
	}
	if celsius {
		return fmt.Sprintf("%.1f°C", snapshot.Temperature), nil
	}
	return fmt.Sprintf("%.1f°F", snapshot.TemperatureFahrenheit()), nil
}
