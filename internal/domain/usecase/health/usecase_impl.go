package health

import (
	"weather-app/internal/domain/gateway/db"
	"weather-app/internal/domain/model"
	"weather-app/internal/infra/network"
)

type healthUseCase struct {
	dbGateway          db.HealthDBGateway
	preferencesGateway db.HealthDBGateway
	connectivity       network.ConnectivityChecker
}

func NewHealthUseCase(dbGateway, preferencesGateway db.HealthDBGateway, connectivity network.ConnectivityChecker) UseCase {
	return &healthUseCase{
		dbGateway:          dbGateway,
		preferencesGateway: preferencesGateway,
		connectivity:       connectivity,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	preferencesHealth := useCase.preferencesGateway.Health()

	connectivityHealth := model.ComponentHealthStatus{Status: model.StatusUp}
	if !useCase.connectivity.IsNetworkAvailable() {
		// The app still works offline from the cache, so connectivity being
		// down does not take the overall status down with it.
		connectivityHealth = model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"note": "serving cached weather only"},
		}
	}

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || preferencesHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:       overallStatus,
		Database:     dbHealth,
		Preferences:  preferencesHealth,
		Connectivity: connectivityHealth,
	}
}
