package controller

import (
	"net/http"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/location"
	"weather-app/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type LocationController struct {
	api     *echo.Group
	useCase location.UseCase
}

func NewLocationController(api *echo.Group, useCase location.UseCase) *LocationController {
	return &LocationController{api: api, useCase: useCase}
}

// InitLocationRoutes initializes favorite and location routes
func (controller *LocationController) InitLocationRoutes() {
	controller.api.GET("/favorites", controller.FindAllFavorites)
	controller.api.POST("/favorites", controller.AddFavorite)
	controller.api.PUT("/favorites/:name", controller.RenameFavorite)
	controller.api.DELETE("/favorites/:name", controller.RemoveFavorite)

	controller.api.GET("/locations", controller.FindAllLocations)
	controller.api.POST("/locations", controller.CreateLocation)
	controller.api.GET("/locations/default", controller.FindDefaultLocation)
	controller.api.GET("/locations/:id", controller.FindLocation)
	controller.api.PUT("/locations/:id", controller.UpdateLocation)
	controller.api.PUT("/locations/:id/default", controller.PromoteDefault)
	controller.api.DELETE("/locations/:id", controller.RemoveLocation)
	controller.api.DELETE("/locations", controller.ClearLocations)
}

func (controller *LocationController) FindAllFavorites(c echo.Context) error {
	cities, err := controller.useCase.GetFavoriteCities()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

func (controller *LocationController) AddFavorite(c echo.Context) error {
	var dto model.FavoriteCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := controller.useCase.AddFavoriteCity(dto.CityName); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Favorite city added"})
}

func (controller *LocationController) RenameFavorite(c echo.Context) error {
	var dto model.RenameFavoriteDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := controller.useCase.RenameFavoriteCity(c.Param("name"), dto.NewName); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favorite city renamed"})
}

func (controller *LocationController) RemoveFavorite(c echo.Context) error {
	if err := controller.useCase.RemoveFavoriteCity(c.Param("name")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *LocationController) FindAllLocations(c echo.Context) error {
	locations, err := controller.useCase.GetLocations()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, locations)
}

func (controller *LocationController) CreateLocation(c echo.Context) error {
	var loc entity.Location
	if err := c.Bind(&loc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	loc.ID = 0

	created, err := controller.useCase.AddLocation(loc)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (controller *LocationController) FindDefaultLocation(c echo.Context) error {
	loc, err := controller.useCase.GetDefaultLocation()
	if err != nil {
		return writeError(c, err)
	}
	if loc == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No default location set"})
	}
	return c.JSON(http.StatusOK, loc)
}

func (controller *LocationController) FindLocation(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id must be a number"})
	}

	loc, err := controller.useCase.GetLocation(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, loc)
}

func (controller *LocationController) UpdateLocation(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id must be a number"})
	}

	var loc entity.Location
	if err := c.Bind(&loc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	loc.ID = id

	if err := controller.useCase.UpdateLocation(loc); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Location updated"})
}

func (controller *LocationController) PromoteDefault(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id must be a number"})
	}

	if err := controller.useCase.PromoteDefault(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Default location updated"})
}

func (controller *LocationController) RemoveLocation(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id must be a number"})
	}

	if err := controller.useCase.RemoveLocation(id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *LocationController) ClearLocations(c echo.Context) error {
	if err := controller.useCase.ClearLocations(); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
