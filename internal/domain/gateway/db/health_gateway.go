package db

import (
	"database/sql"

	"weather-app/internal/domain/model"
)

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}

type sqliteHealthGateway struct {
	db   *sql.DB
	name string
}

func NewSQLiteHealthGateway(db *sql.DB, name string) HealthDBGateway {
	return &sqliteHealthGateway{db: db, name: name}
}

func (g *sqliteHealthGateway) Health() model.ComponentHealthStatus {
	if err := g.db.Ping(); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"database": g.name, "error": err.Error()},
		}
	}
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"database": g.name},
	}
}
