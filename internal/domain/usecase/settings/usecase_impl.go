package settings

import (
	"fmt"
	"strings"

	"weather-app/internal/domain/gateway/db"
	"weather-app/internal/domain/model"
)

type settingsUseCase struct {
	settingsGateway db.SettingsGateway
}

func NewSettingsUseCase(settingsGateway db.SettingsGateway) UseCase {
	return &settingsUseCase{settingsGateway: settingsGateway}
}

func (u *settingsUseCase) GetPreferences() (*Preferences, error) {
	unit, err := u.settingsGateway.GetTemperatureUnit()
	if err != nil {
		return nil, fmt.Errorf("reading temperature unit: %w", err)
	}
	city, err := u.settingsGateway.GetDefaultCity()
	if err != nil {
		return nil, fmt.Errorf("reading default city: %w", err)
	}
	hasCache, err := u.settingsGateway.HasCachedData()
	if err != nil {
		return nil, fmt.Errorf("checking weather cache: %w", err)
	}
	lastUpdate, err := u.settingsGateway.GetLastUpdateTime()
	if err != nil {
		return nil, fmt.Errorf("reading cache timestamp: %w", err)
	}

	return &Preferences{
		TemperatureUnit: unit,
		DefaultCity:     city,
		HasCachedData:   hasCache,
		LastUpdateTime:  lastUpdate,
	}, nil
}

func (u *settingsUseCase) SetTemperatureUnit(unit string) error {
	switch db.TemperatureUnit(strings.ToUpper(strings.TrimSpace(unit))) {
	case db.UnitCelsius:
		return u.store(db.UnitCelsius)
	case db.UnitFahrenheit:
		return u.store(db.UnitFahrenheit)
	default:
		return model.NewError(model.KindValidation, fmt.Sprintf("unknown temperature unit %q, want C or F", unit))
	}
}

func (u *settingsUseCase) store(unit db.TemperatureUnit) error {
	if err := u.settingsGateway.SetTemperatureUnit(unit); err != nil {
		return fmt.Errorf("storing temperature unit: %w", err)
	}
	return nil
}

func (u *settingsUseCase) SetDefaultCity(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.NewError(model.KindValidation, "default city must not be empty")
	}
	if err := u.settingsGateway.SetDefaultCity(name); err != nil {
		return fmt.Errorf("storing default city: %w", err)
	}
	return nil
}

func (u *settingsUseCase) ClearCache() error {
	if err := u.settingsGateway.ClearCache(); err != nil {
		return fmt.Errorf("clearing weather cache: %w", err)
	}
	return nil
}

func (u *settingsUseCase) Reset() error {
	if err := u.settingsGateway.ClearAll(); err != nil {
		return fmt.Errorf("resetting preferences: %w", err)
	}
	return nil
}
