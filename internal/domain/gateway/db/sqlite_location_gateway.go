package db

import (
	"database/sql"
	"errors"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// SQLiteLocationGateway implements LocationGateway over a SQLite database
// opened by the sqlite infra package. Every operation is a single statement
// or a single transaction; there are no long-running cursors.
type SQLiteLocationGateway struct {
	DB *sql.DB
}

var _ LocationGateway = (*SQLiteLocationGateway)(nil)

func NewSQLiteLocationGateway(db *sql.DB) *SQLiteLocationGateway {
	return &SQLiteLocationGateway{DB: db}
}

func storeErr(op string, err error) error {
	return model.WrapError(model.KindStore, op, err)
}

// AddCity inserts a favorite city name. It reports false when the name is
// already present, matching the legacy contract.
func (gateway *SQLiteLocationGateway) AddCity(name string) (bool, error) {
	exists, err := gateway.CityExists(name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err := gateway.DB.Exec(`INSERT INTO favorite_cities (city_name) VALUES (?)`, name); err != nil {
		return false, storeErr("insert favorite city", err)
	}
	return true, nil
}

// GetAllCities returns favorite city names in ascending alphabetical order.
func (gateway *SQLiteLocationGateway) GetAllCities() ([]string, error) {
	rows, err := gateway.DB.Query(`SELECT city_name FROM favorite_cities ORDER BY city_name ASC`)
	if err != nil {
		return nil, storeErr("list favorite cities", err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storeErr("scan favorite city", err)
		}
		cities = append(cities, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate favorite cities", err)
	}

	return cities, nil
}

func (gateway *SQLiteLocationGateway) CityExists(name string) (bool, error) {
	var id int64
	err := gateway.DB.QueryRow(`SELECT id FROM favorite_cities WHERE city_name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("check favorite city", err)
	}
	return true, nil
}

func (gateway *SQLiteLocationGateway) DeleteCity(name string) (bool, error) {
	result, err := gateway.DB.Exec(`DELETE FROM favorite_cities WHERE city_name = ?`, name)
	if err != nil {
		return false, storeErr("delete favorite city", err)
	}
	return rowsChanged(result)
}

func (gateway *SQLiteLocationGateway) UpdateCity(oldName, newName string) (bool, error) {
	result, err := gateway.DB.Exec(`UPDATE favorite_cities SET city_name = ? WHERE city_name = ?`, newName, oldName)
	if err != nil {
		return false, storeErr("rename favorite city", err)
	}
	return rowsChanged(result)
}

func (gateway *SQLiteLocationGateway) GetCityCount() (int, error) {
	var count int
	if err := gateway.DB.QueryRow(`SELECT COUNT(*) FROM favorite_cities`).Scan(&count); err != nil {
		return 0, storeErr("count favorite cities", err)
	}
	return count, nil
}

func (gateway *SQLiteLocationGateway) DeleteAllCities() error {
	if _, err := gateway.DB.Exec(`DELETE FROM favorite_cities`); err != nil {
		return storeErr("clear favorite cities", err)
	}
	return nil
}

// AddLocation inserts the location and returns the assigned id.
func (gateway *SQLiteLocationGateway) AddLocation(loc entity.Location) (int64, error) {
	result, err := gateway.DB.Exec(
		`INSERT INTO locations (city_name, country_code, latitude, longitude, tag, is_default, sort_order, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		loc.CityName, loc.CountryCode, loc.Latitude, loc.Longitude, loc.Tag,
		boolToInt(loc.IsDefault), loc.SortOrder, loc.LastUpdated,
	)
	if err != nil {
		return -1, storeErr("insert location", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return -1, storeErr("read inserted location id", err)
	}
	return id, nil
}

// GetAllLocations returns every location sorted by (sort_order, id) ascending.
func (gateway *SQLiteLocationGateway) GetAllLocations() ([]entity.Location, error) {
	rows, err := gateway.DB.Query(
		`SELECT id, city_name, country_code, latitude, longitude, tag, is_default, sort_order, last_updated
		 FROM locations ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, storeErr("list locations", err)
	}
	defer rows.Close()

	locations := make([]entity.Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate locations", err)
	}

	return locations, nil
}

func (gateway *SQLiteLocationGateway) GetLocationByID(id int64) (*entity.Location, error) {
	row := gateway.DB.QueryRow(
		`SELECT id, city_name, country_code, latitude, longitude, tag, is_default, sort_order, last_updated
		 FROM locations WHERE id = ?`, id)
	return scanOptionalLocation(row)
}

// GetDefaultLocation returns the location flagged as default, or nil when
// none is flagged.
func (gateway *SQLiteLocationGateway) GetDefaultLocation() (*entity.Location, error) {
	row := gateway.DB.QueryRow(
		`SELECT id, city_name, country_code, latitude, longitude, tag, is_default, sort_order, last_updated
		 FROM locations WHERE is_default = 1 LIMIT 1`)
	return scanOptionalLocation(row)
}

// UpdateLocation replaces the full record keyed by id.
func (gateway *SQLiteLocationGateway) UpdateLocation(loc entity.Location) (bool, error) {
	result, err := gateway.DB.Exec(
		`UPDATE locations
		 SET city_name = ?, country_code = ?, latitude = ?, longitude = ?, tag = ?, is_default = ?, sort_order = ?, last_updated = ?
		 WHERE id = ?`,
		loc.CityName, loc.CountryCode, loc.Latitude, loc.Longitude, loc.Tag,
		boolToInt(loc.IsDefault), loc.SortOrder, loc.LastUpdated, loc.ID,
	)
	if err != nil {
		return false, storeErr("update location", err)
	}
	return rowsChanged(result)
}

// PromoteDefault demotes all locations and promotes the target inside one
// transaction. A reader can never observe zero or multiple defaults across
// the transition. A missing id rolls back, leaving the previous default set.
func (gateway *SQLiteLocationGateway) PromoteDefault(id int64) error {
	tx, err := gateway.DB.Begin()
	if err != nil {
		return storeErr("begin default promotion", err)
	}

	if _, err := tx.Exec(`UPDATE locations SET is_default = 0 WHERE is_default = 1`); err != nil {
		_ = tx.Rollback()
		return storeErr("demote defaults", err)
	}

	result, err := tx.Exec(`UPDATE locations SET is_default = 1 WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return storeErr("promote default", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return storeErr("promote default", err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return model.NewError(model.KindNotFound, "location does not exist")
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit default promotion", err)
	}
	return nil
}

func (gateway *SQLiteLocationGateway) DeleteLocation(id int64) (bool, error) {
	result, err := gateway.DB.Exec(`DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return false, storeErr("delete location", err)
	}
	return rowsChanged(result)
}

func (gateway *SQLiteLocationGateway) DeleteAllLocations() error {
	if _, err := gateway.DB.Exec(`DELETE FROM locations`); err != nil {
		return storeErr("clear locations", err)
	}
	return nil
}

func (gateway *SQLiteLocationGateway) GetLocationCount() (int, error) {
	var count int
	if err := gateway.DB.QueryRow(`SELECT COUNT(*) FROM locations`).Scan(&count); err != nil {
		return 0, storeErr("count locations", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (entity.Location, error) {
	var loc entity.Location
	var countryCode, tag sql.NullString
	var isDefault int

	err := row.Scan(&loc.ID, &loc.CityName, &countryCode, &loc.Latitude, &loc.Longitude,
		&tag, &isDefault, &loc.SortOrder, &loc.LastUpdated)
	if err != nil {
		return entity.Location{}, storeErr("scan location", err)
	}

	loc.CountryCode = countryCode.String
	loc.Tag = tag.String
	loc.IsDefault = isDefault == 1
	return loc, nil
}

func scanOptionalLocation(row *sql.Row) (*entity.Location, error) {
	loc, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func rowsChanged(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("read affected rows", err)
	}
	return affected > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
