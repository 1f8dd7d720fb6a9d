package model

// WeatherIcon is the symbolic icon identifier for a condition code. The
// presentation layer maps it onto whatever asset set it ships.
type WeatherIcon string

const (
	IconThunderstorm WeatherIcon = "thunderstorm"
	IconRain         WeatherIcon = "rain"
	IconSnow         WeatherIcon = "snow"
	IconMist         WeatherIcon = "mist"
	IconClear        WeatherIcon = "clear"
	IconClouds       WeatherIcon = "clouds"
)

// BackgroundGradient is the symbolic background identifier for a view.
type BackgroundGradient string

const (
	GradientNight  BackgroundGradient = "night"
	GradientRain   BackgroundGradient = "rain"
	GradientClouds BackgroundGradient = "clouds"
	GradientHot    BackgroundGradient = "hot"
	GradientCold   BackgroundGradient = "cold"
	GradientClear  BackgroundGradient = "clear"
)

// IconFor maps an OpenWeatherMap condition id onto an icon.
// Ranges: 2xx thunderstorm, 3xx drizzle, 5xx rain, 6xx snow,
// 7xx atmosphere, 800 clear, >800 clouds.
func IconFor(conditionID int) WeatherIcon {
	switch {
	case conditionID >= 200 && conditionID < 300:
		return IconThunderstorm
	case (conditionID >= 300 && conditionID < 400) || (conditionID >= 500 && conditionID < 600):
		return IconRain
	case conditionID >= 600 && conditionID < 700:
		return IconSnow
	case conditionID >= 700 && conditionID < 800:
		return IconMist
	case conditionID == 800:
		return IconClear
	case conditionID > 800:
		return IconClouds
	default:
		return IconClear
	}
}

// GradientFor picks a background for the given condition, temperature and
// time of day. Night wins over everything; rain and storm conditions win
// over temperature banding.
func GradientFor(conditionID int, temperatureC float64, isNight bool) BackgroundGradient {
	if isNight {
		return GradientNight
	}
	if conditionID >= 200 && conditionID < 600 {
		return GradientRain
	}
	if conditionID > 800 {
		return GradientClouds
	}
	if temperatureC > 30 {
		return GradientHot
	}
	if temperatureC < 15 {
		return GradientCold
	}
	return GradientClear
}
