package location

import (
	"fmt"
	"strings"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/db"
	"weather-app/internal/domain/model"
	"weather-app/pkg/msg"

	"github.com/go-playground/validator/v10"
)

type locationUseCase struct {
	dbGateway db.LocationGateway
	validate  *validator.Validate
}

func NewLocationUseCase(dbGateway db.LocationGateway) UseCase {
	return &locationUseCase{
		dbGateway: dbGateway,
		validate:  validator.New(),
	}
}

func (u *locationUseCase) AddFavoriteCity(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.NewError(model.KindValidation, msg.GetMessage("location.error.empty-name"))
	}

	added, err := u.dbGateway.AddCity(name)
	if err != nil {
		return fmt.Errorf("adding favorite city: %w", err)
	}
	if !added {
		return model.NewError(model.KindUniqueness, msg.GetMessage("location.error.duplicate", name))
	}
	return nil
}

func (u *locationUseCase) GetFavoriteCities() ([]string, error) {
	cities, err := u.dbGateway.GetAllCities()
	if err != nil {
		return nil, fmt.Errorf("listing favorite cities: %w", err)
	}
	return cities, nil
}

func (u *locationUseCase) RenameFavoriteCity(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return model.NewError(model.KindValidation, msg.GetMessage("location.error.empty-name"))
	}

	exists, err := u.dbGateway.CityExists(newName)
	if err != nil {
		return fmt.Errorf("checking favorite city: %w", err)
	}
	if exists {
		return model.NewError(model.KindUniqueness, msg.GetMessage("location.error.duplicate", newName))
	}

	updated, err := u.dbGateway.UpdateCity(oldName, newName)
	if err != nil {
		return fmt.Errorf("renaming favorite city: %w", err)
	}
	if !updated {
		return model.NewError(model.KindNotFound, msg.GetMessage("location.error.favorite-not-found", oldName))
	}
	return nil
}

func (u *locationUseCase) RemoveFavoriteCity(name string) error {
	deleted, err := u.dbGateway.DeleteCity(name)
	if err != nil {
		return fmt.Errorf("removing favorite city: %w", err)
	}
	if !deleted {
		return model.NewError(model.KindNotFound, msg.GetMessage("location.error.favorite-not-found", name))
	}
	return nil
}

func (u *locationUseCase) AddLocation(loc entity.Location) (*entity.Location, error) {
	if err := u.validateLocation(loc); err != nil {
		return nil, err
	}

	id, err := u.dbGateway.AddLocation(loc)
	if err != nil {
		return nil, fmt.Errorf("adding location: %w", err)
	}
	loc.ID = id
	return &loc, nil
}

func (u *locationUseCase) GetLocations() ([]entity.Location, error) {
	locations, err := u.dbGateway.GetAllLocations()
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locations, nil
}

func (u *locationUseCase) GetLocation(id int64) (*entity.Location, error) {
	loc, err := u.dbGateway.GetLocationByID(id)
	if err != nil {
		return nil, fmt.Errorf("fetching location: %w", err)
	}
	if loc == nil {
		return nil, model.NewError(model.KindNotFound, msg.GetMessage("location.error.not-found", id))
	}
	return loc, nil
}

func (u *locationUseCase) GetDefaultLocation() (*entity.Location, error) {
	loc, err := u.dbGateway.GetDefaultLocation()
	if err != nil {
		return nil, fmt.Errorf("fetching default location: %w", err)
	}
	return loc, nil
}

func (u *locationUseCase) UpdateLocation(loc entity.Location) error {
	if err := u.validateLocation(loc); err != nil {
		return err
	}

	updated, err := u.dbGateway.UpdateLocation(loc)
	if err != nil {
		return fmt.Errorf("updating location: %w", err)
	}
	if !updated {
		return model.NewError(model.KindNotFound, msg.GetMessage("location.error.not-found", loc.ID))
	}
	return nil
}

func (u *locationUseCase) PromoteDefault(id int64) error {
	if err := u.dbGateway.PromoteDefault(id); err != nil {
		return fmt.Errorf("promoting default location: %w", err)
	}
	return nil
}

func (u *locationUseCase) RemoveLocation(id int64) error {
	deleted, err := u.dbGateway.DeleteLocation(id)
	if err != nil {
		return fmt.Errorf("removing location: %w", err)
	}
	if !deleted {
		return model.NewError(model.KindNotFound, msg.GetMessage("location.error.not-found", id))
	}
	return nil
}

func (u *locationUseCase) ClearLocations() error {
	if err := u.dbGateway.DeleteAllLocations(); err != nil {
		return fmt.Errorf("clearing locations: %w", err)
	}
	return nil
}

func (u *locationUseCase) CountLocations() (int, error) {
	count, err := u.dbGateway.GetLocationCount()
	if err != nil {
		return 0, fmt.Errorf("counting locations: %w", err)
	}
	return count, nil
}

func (u *locationUseCase) validateLocation(loc entity.Location) error {
	if err := u.validate.Struct(loc); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return model.NewError(model.KindValidation,
				fmt.Sprintf("invalid location: field %s failed %s validation", first.Field(), first.Tag()))
		}
		return model.NewError(model.KindValidation, "invalid location")
	}
	return nil
}
