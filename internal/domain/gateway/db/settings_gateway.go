package db

// TemperatureUnit is the persisted display-unit preference.
type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "C"
	UnitFahrenheit TemperatureUnit = "F"
)

// Defaults handed out when a preference was never written.
const (
	DefaultCity          = "Hanoi"
	placeholderTemp      = "--"
	placeholderCondition = "..."
)

// SettingsGateway is the durable key/value preference store plus the
// single-slot offline weather cache. The cache is deliberately not keyed by
// city: fetching city B overwrites whatever city A left behind, because the
// slot represents "most recent known weather", not a per-city history.
type SettingsGateway interface {
	GetTemperatureUnit() (TemperatureUnit, error)
	SetTemperatureUnit(unit TemperatureUnit) error
	IsCelsius() (bool, error)

	GetDefaultCity() (string, error)
	SetDefaultCity(name string) error

	CacheWeatherData(city, temperature, condition string) error
	GetCachedCity() (string, error)
	GetCachedTemperature() (string, error)
	GetCachedCondition() (string, error)
	HasCachedData() (bool, error)

	GetLastUpdateTime() (int64, error)
	SetLastUpdateTime(timestamp int64) error

	ClearCache() error
	ClearAll() error
}
