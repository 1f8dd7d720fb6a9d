package controller

import (
	"context"
	"net/http"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/log"
	"weather-app/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetCurrentWeather)
	controller.api.GET("/weather/forecast", controller.GetForecast)
	controller.api.GET("/weather/search", controller.SearchCities)
	controller.api.GET("/weather/resolve", controller.ResolveAndFetch)
	controller.api.POST("/weather/refresh", controller.RefreshCache)
}

// weatherResponse decorates a weather view with presentation hints derived
// from the condition code.
type weatherResponse struct {
	*model.WeatherView
	Icon          model.WeatherIcon        `json:"icon,omitempty"`
	Gradient      model.BackgroundGradient `json:"gradient,omitempty"`
	WindDirection string                   `json:"windDirection,omitempty"`
}

func newWeatherResponse(view *model.WeatherView) weatherResponse {
	response := weatherResponse{WeatherView: view}
	if view.Snapshot == nil {
		return response
	}

	snapshot := view.Snapshot
	isNight := false
	if snapshot.Sunrise > 0 && snapshot.Sunset > 0 {
		nowSeconds := view.UpdatedAt / 1000
		isNight = nowSeconds < snapshot.Sunrise || nowSeconds > snapshot.Sunset
	}

	response.Icon = model.IconFor(snapshot.ConditionID)
	response.Gradient = model.GradientFor(snapshot.ConditionID, snapshot.Temperature, isNight)
	response.WindDirection = snapshot.WindDirection()
	return response
}

// GetCurrentWeather resolves current conditions by city name or coordinates.
// No parameters at all means the configured default city.
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	query := model.WeatherQuery{City: c.QueryParam("city")}

	latParam := c.QueryParam("lat")
	lonParam := c.QueryParam("lon")
	if latParam != "" || lonParam != "" {
		lat, err := numberutils.ToFloat64WithError(latParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat must be a number"})
		}
		lon, err := numberutils.ToFloat64WithError(lonParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "lon must be a number"})
		}
		query.Latitude = lat
		query.Longitude = lon
		query.HasCoordinates = true
	}

	view, err := controller.useCase.GetWeather(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newWeatherResponse(view))
}

func (controller *WeatherController) GetForecast(c echo.Context) error {
	days, err := controller.useCase.GetForecast(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, days)
}

func (controller *WeatherController) SearchCities(c echo.Context) error {
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 5)

	results, err := controller.useCase.SearchCities(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func (controller *WeatherController) ResolveAndFetch(c echo.Context) error {
	view, err := controller.useCase.ResolveAndFetch(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newWeatherResponse(view))
}

// RefreshCache triggers a background refresh of the default location cache.
func (controller *WeatherController) RefreshCache(c echo.Context) error {
	// Execute in a separate goroutine to avoid blocking the request. The
	// request context dies with the response, so the refresh gets its own.
	go func() {
		if err := controller.useCase.RefreshDefaultLocation(context.Background()); err != nil {
			log.Errorf("manual cache refresh failed: %v", err)
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "Cache refresh scheduled"})
}
