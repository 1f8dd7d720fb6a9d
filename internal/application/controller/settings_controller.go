package controller

import (
	"net/http"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/settings"

	"github.com/labstack/echo/v4"
)

type SettingsController struct {
	api     *echo.Group
	useCase settings.UseCase
}

func NewSettingsController(api *echo.Group, useCase settings.UseCase) *SettingsController {
	return &SettingsController{api: api, useCase: useCase}
}

// InitSettingsRoutes initializes preference routes
func (controller *SettingsController) InitSettingsRoutes() {
	controller.api.GET("/settings", controller.FindPreferences)
	controller.api.PUT("/settings/unit", controller.UpdateTemperatureUnit)
	controller.api.PUT("/settings/default-city", controller.UpdateDefaultCity)
	controller.api.DELETE("/settings/cache", controller.ClearCache)
	controller.api.DELETE("/settings", controller.Reset)
}

func (controller *SettingsController) FindPreferences(c echo.Context) error {
	preferences, err := controller.useCase.GetPreferences()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, preferences)
}

func (controller *SettingsController) UpdateTemperatureUnit(c echo.Context) error {
	var dto model.TemperatureUnitDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := controller.useCase.SetTemperatureUnit(dto.Unit); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Temperature unit updated"})
}

func (controller *SettingsController) UpdateDefaultCity(c echo.Context) error {
	var dto model.DefaultCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := controller.useCase.SetDefaultCity(dto.CityName); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Default city updated"})
}

func (controller *SettingsController) ClearCache(c echo.Context) error {
	if err := controller.useCase.ClearCache(); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *SettingsController) Reset(c echo.Context) error {
	if err := controller.useCase.Reset(); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
