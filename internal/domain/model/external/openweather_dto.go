package external

// CurrentWeatherResponse mirrors the OpenWeatherMap /data/2.5/weather body.
// Pointer fields distinguish "absent" from zero for the required-field check.
type CurrentWeatherResponse struct {
	Name       string             `json:"name"`
	Weather    []WeatherCondition `json:"weather"`
	Main       *MainReadings      `json:"main"`
	Wind       *WindReadings      `json:"wind"`
	Clouds     *CloudsReadings    `json:"clouds"`
	Rain       *Precipitation     `json:"rain"`
	Snow       *Precipitation     `json:"snow"`
	Sys        *SysReadings       `json:"sys"`
	Visibility int                `json:"visibility"`
	Dt         int64              `json:"dt"`
}

type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  int      `json:"humidity"`
	Pressure  int      `json:"pressure"`
}

type WindReadings struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type CloudsReadings struct {
	All int `json:"all"`
}

// Precipitation reports volume over the trailing window in millimeters.
type Precipitation struct {
	OneHour float64 `json:"1h"`
}

type SysReadings struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// ForecastResponse mirrors the /data/2.5/forecast body (3-hour entries).
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
}

type ForecastEntry struct {
	DtTxt   string             `json:"dt_txt"` // "2006-01-02 15:04:05", provider-local
	Main    ForecastMain       `json:"main"`
	Weather []WeatherCondition `json:"weather"`
}

type ForecastMain struct {
	Temp float64 `json:"temp"`
}

// GeocodingResult is one element of the geo/1.0/direct response array.
type GeocodingResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// APIErrorResponse is OpenWeatherMap's error envelope. The cod field is a
// string in some responses and a number in others, so it is left untyped.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
