package main

import (
	"github.com/labstack/echo/v4"

	_ "weather-app/configs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	"weather-app/internal/application/schedule"
	apigateway "weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/db"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/location"
	"weather-app/internal/domain/usecase/settings"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/internal/infra/database/sqlite"
	"weather-app/internal/infra/network"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	weatherDB, err := sqlite.Open(resource.GetString("app.db.path"))
	if err != nil {
		log.Fatalf("Failed to open weather database: %v", err)
	}
	defer weatherDB.Close()

	preferencesDB, err := sqlite.OpenPreferences(resource.GetString("app.db.preferences-path"))
	if err != nil {
		log.Fatalf("Failed to open preferences database: %v", err)
	}
	defer preferencesDB.Close()

	connectivity := network.NewDialProbe(
		resource.GetString("app.connectivity.probe-address"),
		resource.GetDuration("app.connectivity.probe-timeout"),
	)

	// Init Gateways
	locationGateway := db.NewSQLiteLocationGateway(weatherDB)
	settingsGateway := db.NewSQLiteSettingsGateway(preferencesDB)
	weatherGateway := apigateway.NewOpenWeatherGateway(apigateway.OpenWeatherConfig{
		BaseURL:        resource.GetString("app.openweather.base-url"),
		GeoBaseURL:     resource.GetString("app.openweather.geo-base-url"),
		APIKey:         resource.GetString("app.openweather.api-key"),
		Lang:           resource.GetString("app.openweather.lang"),
		ConnectTimeout: resource.GetDuration("app.openweather.connect-timeout"),
		ReadTimeout:    resource.GetDuration("app.openweather.read-timeout"),
		RateLimitRPS:   resource.GetFloat64("app.openweather.rate-limit-rps"),
		RateLimitBurst: resource.GetInt("app.openweather.rate-limit-burst"),
		Backoff: &http.BackoffConfig{
			MaxRetries:      resource.GetInt("app.openweather.retry.max-retries"),
			InitialInterval: resource.GetDuration("app.openweather.retry.initial-interval"),
			MaxInterval:     resource.GetDuration("app.openweather.retry.max-interval"),
		},
	})

	// Init UseCases
	healthUseCase := health.NewHealthUseCase(
		db.NewSQLiteHealthGateway(weatherDB, "weather"),
		db.NewSQLiteHealthGateway(preferencesDB, "preferences"),
		connectivity,
	)
	locationUseCase := location.NewLocationUseCase(locationGateway)
	settingsUseCase := settings.NewSettingsUseCase(settingsGateway)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, settingsGateway, locationGateway, connectivity, nil)

	// Init Controllers
	healthController := controller.NewHealthController(api, healthUseCase)
	locationController := controller.NewLocationController(api, locationUseCase)
	settingsController := controller.NewSettingsController(api, settingsUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	locationController.InitLocationRoutes()
	settingsController.InitSettingsRoutes()
	weatherController.InitWeatherRoutes()

	// Init Schedule
	weatherScheduler := schedule.NewWeatherScheduler(
		weatherUseCase,
		resource.GetString("app.cache.refresh.cron"),
		resource.GetDuration("app.cache.refresh.task-timeout"),
	)
	weatherScheduler.InitWeatherScheduleTasks()
	defer weatherScheduler.Stop()

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}
