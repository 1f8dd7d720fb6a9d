package settings

import (
	"testing"

	"weather-app/internal/domain/gateway/db"
	"weather-app/internal/domain/model"
)

type stubSettingsGateway struct {
	db.SettingsGateway

	unit        db.TemperatureUnit
	defaultCity string
}

func (s *stubSettingsGateway) SetTemperatureUnit(unit db.TemperatureUnit) error {
	s.unit = unit
	return nil
}

func (s *stubSettingsGateway) SetDefaultCity(name string) error {
	s.defaultCity = name
	return nil
}

func TestSetTemperatureUnitNormalizesInput(t *testing.T) {
	stub := &stubSettingsGateway{}
	useCase := NewSettingsUseCase(stub)

	if err := useCase.SetTemperatureUnit(" f "); err != nil {
		t.Fatalf("SetTemperatureUnit failed: %v", err)
	}
	if stub.unit != db.UnitFahrenheit {
		t.Fatalf("expected F to be stored, got %q", stub.unit)
	}

	if err := useCase.SetTemperatureUnit("c"); err != nil {
		t.Fatalf("SetTemperatureUnit failed: %v", err)
	}
	if stub.unit != db.UnitCelsius {
		t.Fatalf("expected C to be stored, got %q", stub.unit)
	}
}

func TestSetTemperatureUnitRejectsUnknownUnit(t *testing.T) {
	useCase := NewSettingsUseCase(&stubSettingsGateway{})

	err := useCase.SetTemperatureUnit("K")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindValidation {
		t.Fatalf("expected VALIDATION, got %v", model.KindOf(err))
	}
}

func TestSetDefaultCityRejectsEmptyName(t *testing.T) {
	useCase := NewSettingsUseCase(&stubSettingsGateway{})

	err := useCase.SetDefaultCity("  ")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindValidation {
		t.Fatalf("expected VALIDATION, got %v", model.KindOf(err))
	}
}
