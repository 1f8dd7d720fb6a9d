package db

import (
	"database/sql"
	"errors"
	"strconv"

	"weather-app/internal/domain/model"
)

const (
	keyTemperatureUnit = "temperature_unit"
	keyDefaultCity     = "default_city"
	keyCachedCity      = "cached_city"
	keyCachedTemp      = "cached_temp"
	keyCachedCondition = "cached_condition"
	keyLastUpdateTime  = "last_update_time"
)

// SQLiteSettingsGateway implements SettingsGateway over the preferences
// database. Each preference is one row; reads of unset keys return the
// documented defaults rather than errors.
type SQLiteSettingsGateway struct {
	DB *sql.DB
}

var _ SettingsGateway = (*SQLiteSettingsGateway)(nil)

func NewSQLiteSettingsGateway(db *sql.DB) *SQLiteSettingsGateway {
	return &SQLiteSettingsGateway{DB: db}
}

func (gateway *SQLiteSettingsGateway) get(key, defaultValue string) (string, error) {
	var value string
	err := gateway.DB.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return defaultValue, nil
	}
	if err != nil {
		return "", model.WrapError(model.KindStore, "read preference "+key, err)
	}
	return value, nil
}

func (gateway *SQLiteSettingsGateway) set(key, value string) error {
	_, err := gateway.DB.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return model.WrapError(model.KindStore, "write preference "+key, err)
	}
	return nil
}

func (gateway *SQLiteSettingsGateway) remove(keys ...string) error {
	for _, key := range keys {
		if _, err := gateway.DB.Exec(`DELETE FROM preferences WHERE key = ?`, key); err != nil {
			return model.WrapError(model.KindStore, "remove preference "+key, err)
		}
	}
	return nil
}

func (gateway *SQLiteSettingsGateway) GetTemperatureUnit() (TemperatureUnit, error) {
	value, err := gateway.get(keyTemperatureUnit, string(UnitCelsius))
	if err != nil {
		return "", err
	}
	return TemperatureUnit(value), nil
}

func (gateway *SQLiteSettingsGateway) SetTemperatureUnit(unit TemperatureUnit) error {
	return gateway.set(keyTemperatureUnit, string(unit))
}

func (gateway *SQLiteSettingsGateway) IsCelsius() (bool, error) {
	unit, err := gateway.GetTemperatureUnit()
	if err != nil {
		return false, err
	}
	return unit == UnitCelsius, nil
}

func (gateway *SQLiteSettingsGateway) GetDefaultCity() (string, error) {
	return gateway.get(keyDefaultCity, DefaultCity)
}

func (gateway *SQLiteSettingsGateway) SetDefaultCity(name string) error {
	return gateway.set(keyDefaultCity, name)
}

// CacheWeatherData overwrites the single offline cache slot.
func (gateway *SQLiteSettingsGateway) CacheWeatherData(city, temperature, condition string) error {
	if err := gateway.set(keyCachedCity, city); err != nil {
		return err
	}
	if err := gateway.set(keyCachedTemp, temperature); err != nil {
		return err
	}
	return gateway.set(keyCachedCondition, condition)
}

func (gateway *SQLiteSettingsGateway) GetCachedCity() (string, error) {
	return gateway.get(keyCachedCity, "")
}

func (gateway *SQLiteSettingsGateway) GetCachedTemperature() (string, error) {
	return gateway.get(keyCachedTemp, placeholderTemp)
}

func (gateway *SQLiteSettingsGateway) GetCachedCondition() (string, error) {
	return gateway.get(keyCachedCondition, placeholderCondition)
}

// HasCachedData reports whether the cache slot holds anything; the cached
// city name is the sentinel.
func (gateway *SQLiteSettingsGateway) HasCachedData() (bool, error) {
	city, err := gateway.GetCachedCity()
	if err != nil {
		return false, err
	}
	return city != "", nil
}

func (gateway *SQLiteSettingsGateway) GetLastUpdateTime() (int64, error) {
	value, err := gateway.get(keyLastUpdateTime, "0")
	if err != nil {
		return 0, err
	}
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, model.WrapError(model.KindStore, "parse last update time", err)
	}
	return ts, nil
}

func (gateway *SQLiteSettingsGateway) SetLastUpdateTime(timestamp int64) error {
	return gateway.set(keyLastUpdateTime, strconv.FormatInt(timestamp, 10))
}

// ClearCache drops the cache slot and the last-update marker, leaving the
// user preferences alone.
func (gateway *SQLiteSettingsGateway) ClearCache() error {
	return gateway.remove(keyCachedCity, keyCachedTemp, keyCachedCondition, keyLastUpdateTime)
}

// ClearAll wipes every preference.
func (gateway *SQLiteSettingsGateway) ClearAll() error {
	if _, err := gateway.DB.Exec(`DELETE FROM preferences`); err != nil {
		return model.WrapError(model.KindStore, "clear preferences", err)
	}
	return nil
}
