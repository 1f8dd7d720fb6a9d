package entity

// WeatherSnapshot is a point-in-time weather reading for one place.
// Temperatures are Celsius, wind speed m/s, pressure hPa, visibility meters.
type WeatherSnapshot struct {
	CityName    string  `json:"cityName"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	ConditionID int     `json:"conditionId"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	WindDeg     int     `json:"windDeg"`
	Pressure    int     `json:"pressure"`
	Visibility  int     `json:"visibility"`
	Clouds      int     `json:"clouds"`
	Sunrise     int64   `json:"sunrise"` // epoch seconds, 0 when absent
	Sunset      int64   `json:"sunset"`
	Rain1h      float64 `json:"rain1h"` // mm over the last hour
	Snow1h      float64 `json:"snow1h"`
	UVIndex     float64 `json:"uvIndex"`
}

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// TemperatureFahrenheit converts the canonical Celsius reading.
func (s WeatherSnapshot) TemperatureFahrenheit() float64 {
	return s.Temperature*9/5 + 32
}

// FeelsLikeFahrenheit converts the feels-like reading.
func (s WeatherSnapshot) FeelsLikeFahrenheit() float64 {
	return s.FeelsLike*9/5 + 32
}

// WindDirection maps the wind bearing onto an 8-point compass label.
func (s WeatherSnapshot) WindDirection() string {
	index := int(float64(s.WindDeg)+22.5) / 45 % 8
	return compassPoints[index]
}

// WindSpeedKmh converts the canonical m/s wind speed.
func (s WeatherSnapshot) WindSpeedKmh() float64 {
	return s.WindSpeed * 3.6
}
