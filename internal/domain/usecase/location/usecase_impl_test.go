package location

import (
	"testing"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/db"
	"weather-app/internal/domain/model"
)

// stubLocationGateway overrides only what each test needs; the embedded
// interface panics if the use case reaches past the stubbed surface.
type stubLocationGateway struct {
	db.LocationGateway

	addCityResult   bool
	cityExists      bool
	updateCityOK    bool
	deleteCityOK    bool
	addedLocationID int64
	lastAdded       *entity.Location
}

func (s *stubLocationGateway) AddCity(name string) (bool, error) {
	return s.addCityResult, nil
}

func (s *stubLocationGateway) CityExists(name string) (bool, error) {
	return s.cityExists, nil
}

func (s *stubLocationGateway) UpdateCity(oldName, newName string) (bool, error) {
	return s.updateCityOK, nil
}

func (s *stubLocationGateway) DeleteCity(name string) (bool, error) {
	return s.deleteCityOK, nil
}

func (s *stubLocationGateway) AddLocation(loc entity.Location) (int64, error) {
	s.lastAdded = &loc
	return s.addedLocationID, nil
}

func TestAddFavoriteCityRejectsEmptyName(t *testing.T) {
	useCase := NewLocationUseCase(&stubLocationGateway{})

	err := useCase.AddFavoriteCity("   ")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindValidation {
		t.Fatalf("expected VALIDATION, got %v", model.KindOf(err))
	}
}

func TestAddFavoriteCityDuplicateIsUniquenessViolation(t *testing.T) {
	useCase := NewLocationUseCase(&stubLocationGateway{addCityResult: false})

	err := useCase.AddFavoriteCity("Hanoi")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindUniqueness {
		t.Fatalf("expected UNIQUENESS_VIOLATION, got %v", model.KindOf(err))
	}
}

func TestRenameFavoriteCityToExistingNameFails(t *testing.T) {
	useCase := NewLocationUseCase(&stubLocationGateway{cityExists: true})

	err := useCase.RenameFavoriteCity("Hanoi", "Paris")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindUniqueness {
		t.Fatalf("expected UNIQUENESS_VIOLATION, got %v", model.KindOf(err))
	}
}

func TestRenameFavoriteCityMissingSourceIsNotFound(t *testing.T) {
	useCase := NewLocationUseCase(&stubLocationGateway{cityExists: false, updateCityOK: false})

	err := useCase.RenameFavoriteCity("Hue", "Hoi An")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", model.KindOf(err))
	}
}

func TestAddLocationValidation(t *testing.T) {
	tests := []struct {
		name string
		loc  entity.Location
	}{
		{"missing city name", entity.Location{Latitude: 10, Longitude: 10}},
		{"latitude above range", entity.Location{CityName: "Hanoi", Latitude: 91, Longitude: 10}},
		{"latitude below range", entity.Location{CityName: "Hanoi", Latitude: -91, Longitude: 10}},
		{"longitude above range", entity.Location{CityName: "Hanoi", Latitude: 10, Longitude: 181}},
		{"longitude below range", entity.Location{CityName: "Hanoi", Latitude: 10, Longitude: -181}},
	}

	useCase := NewLocationUseCase(&stubLocationGateway{addedLocationID: 1})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.AddLocation(tt.loc)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if model.KindOf(err) != model.KindValidation {
				t.Fatalf("expected VALIDATION, got %v", model.KindOf(err))
			}
		})
	}
}

func TestAddLocationAssignsGeneratedID(t *testing.T) {
	stub := &stubLocationGateway{addedLocationID: 42}
	useCase := NewLocationUseCase(stub)

	created, err := useCase.AddLocation(entity.Location{
		CityName:  "Hanoi",
		Latitude:  21.0285,
		Longitude: 105.8542,
	})
	if err != nil {
		t.Fatalf("AddLocation failed: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("expected the generated id 42, got %d", created.ID)
	}
	if stub.lastAdded == nil || stub.lastAdded.CityName != "Hanoi" {
		t.Fatalf("expected the location to reach the gateway, got %+v", stub.lastAdded)
	}
}

func TestRemoveFavoriteCityMissingIsNotFound(t *testing.T) {
	useCase := NewLocationUseCase(&stubLocationGateway{deleteCityOK: false})

	err := useCase.RemoveFavoriteCity("Hue")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", model.KindOf(err))
	}
}
