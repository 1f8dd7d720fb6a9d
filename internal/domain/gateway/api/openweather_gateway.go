package api

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
	"weather-app/pkg/msg"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	forecastPath       = "/data/2.5/forecast"
	geocodingPath      = "/geo/1.0/direct"

	forecastMaxDays  = 5
	forecastDateOnly = "2006-01-02"
)

// OpenWeatherConfig carries everything the gateway needs to talk to
// OpenWeatherMap. Zero timeouts fall back to 10 seconds each.
type OpenWeatherConfig struct {
	BaseURL        string
	GeoBaseURL     string
	APIKey         string
	Lang           string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	Backoff        *http.BackoffConfig
}

// openWeatherGateway implements WeatherGateway against OpenWeatherMap.
// Outbound calls pass a rate limiter and a circuit breaker; only transport
// failures and server errors count against the breaker.
type openWeatherGateway struct {
	weatherClient *http.Client
	geoClient     *http.Client
	apiKey        string
	lang          string
	backoff       *http.BackoffConfig
	limiter       *rate.Limiter
	breaker       *gobreaker.CircuitBreaker
}

// NewOpenWeatherGateway creates a new instance of WeatherGateway with HTTP clients
// for the data and geocoding hosts.
func NewOpenWeatherGateway(cfg OpenWeatherConfig) WeatherGateway {
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.GeoBaseURL == "" {
		cfg.GeoBaseURL = cfg.BaseURL
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 1
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 1
	}

	clientOptions := http.ClientOptions{
		ConnectionTimeout: cfg.ConnectTimeout,
		ReadTimeout:       cfg.ReadTimeout,
	}

	return &openWeatherGateway{
		weatherClient: http.NewHttpClient(cfg.BaseURL, clientOptions),
		geoClient:     http.NewHttpClient(cfg.GeoBaseURL, clientOptions),
		apiKey:        cfg.APIKey,
		lang:          cfg.Lang,
		backoff:       cfg.Backoff,
		limiter:       rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweather",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// FetchCurrentByCity fetches current conditions for a city by name.
func (g *openWeatherGateway) FetchCurrentByCity(ctx context.Context, city string) (*entity.WeatherSnapshot, error) {
	params := g.baseParams()
	params["q"] = city
	return g.fetchCurrent(ctx, params)
}

// FetchCurrentByCoordinates fetches current conditions for a coordinate pair.
func (g *openWeatherGateway) FetchCurrentByCoordinates(ctx context.Context, lat, lon float64) (*entity.WeatherSnapshot, error) {
	params := g.baseParams()
	params["lat"] = fmt.Sprintf("%f", lat)
	params["lon"] = fmt.Sprintf("%f", lon)
	return g.fetchCurrent(ctx, params)
}

func (g *openWeatherGateway) baseParams() map[string]string {
	return map[string]string{
		"appid": g.apiKey,
		"units": "metric",
		"lang":  g.lang,
	}
}

func (g *openWeatherGateway) fetchCurrent(ctx context.Context, params map[string]string) (*entity.WeatherSnapshot, error) {
	resp := &external.CurrentWeatherResponse{}
	if err := g.execute(ctx, g.weatherClient, currentWeatherPath, params, resp); err != nil {
		return nil, err
	}
	return snapshotFromResponse(resp)
}

// FetchForecast fetches the 3-hour-interval forecast and aggregates it into
// calendar days.
func (g *openWeatherGateway) FetchForecast(ctx context.Context, city string) ([]entity.ForecastDay, error) {
	params := g.baseParams()
	params["q"] = city

	resp := &external.ForecastResponse{}
	if err := g.execute(ctx, g.weatherClient, forecastPath, params, resp); err != nil {
		return nil, err
	}

	days := groupForecastByDay(resp.List)
	if len(days) == 0 {
		return nil, model.NewError(model.KindNoData, msg.GetMessage("weather.error.no-data"))
	}
	return days, nil
}

// SearchCities resolves a free-text query through the geocoding endpoint.
func (g *openWeatherGateway) SearchCities(ctx context.Context, query string, limit int) ([]model.CitySearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	params := map[string]string{
		"q":     query,
		"limit": fmt.Sprintf("%d", limit),
		"appid": g.apiKey,
	}

	var resp []external.GeocodingResult
	if err := g.execute(ctx, g.geoClient, geocodingPath, params, &resp); err != nil {
		return nil, err
	}

	results := make([]model.CitySearchResult, 0, len(resp))
	for _, hit := range resp {
		results = append(results, model.CitySearchResult{
			Name:        hit.Name,
			State:       hit.State,
			Country:     hit.Country,
			Latitude:    hit.Lat,
			Longitude:   hit.Lon,
			DisplayName: composeDisplayName(hit),
		})
	}
	return results, nil
}

// execute runs one GET through the rate limiter and circuit breaker and
// classifies every failure into the gateway error taxonomy.
func (g *openWeatherGateway) execute(ctx context.Context, client *http.Client, path string, params map[string]string, successResp any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return model.WrapError(model.KindNetwork, "rate limit wait canceled", err)
	}

	type outcome struct {
		err error
	}

	result, breakerErr := g.breaker.Execute(func() (any, error) {
		errResp := &external.APIErrorResponse{}
		_, _, status, err := client.Request().
			WithContext(ctx).
			WithMethod(http.GET).
			WithPath(path).
			WithQueryParams(params).
			WithSuccessResp(successResp).
			WithErrorResp(errResp).
			WithBackoff(g.backoff).
			Execute()

		if err == nil {
			return outcome{}, nil
		}

		classified := classifyHTTPFailure(status, errResp, err)
		// Transport failures and server errors trip the breaker; a 4xx is a
		// definitive answer, not a sign the provider is down.
		if status == 0 || status >= 500 || status == 429 {
			return nil, classified
		}
		return outcome{err: classified}, nil
	})

	if breakerErr != nil {
		if model.KindOf(breakerErr) != "" {
			return breakerErr
		}
		// The breaker refused the call outright.
		return model.WrapError(model.KindNetwork, "weather service temporarily unavailable", breakerErr)
	}

	if out, ok := result.(outcome); ok && out.err != nil {
		return out.err
	}
	return nil
}

func classifyHTTPFailure(status int, errResp *external.APIErrorResponse, err error) error {
	if status == 0 {
		return model.WrapError(model.KindNetwork, "request failed", err)
	}

	message := errResp.Message
	if status == 429 || strings.Contains(strings.ToLower(message), "quota") {
		if message == "" {
			message = msg.GetMessage("weather.error.quota-exceeded")
		}
		return &model.Error{Kind: model.KindQuotaExceeded, Status: status, Message: message}
	}

	if message == "" {
		switch status {
		case 404:
			message = msg.GetMessage("weather.error.not-found")
		case 401:
			message = msg.GetMessage("weather.error.invalid-credentials")
		default:
			message = msg.GetMessage("weather.error.server-error", status)
		}
	}
	return model.NewHTTPStatusError(status, message)
}

// snapshotFromResponse validates required fields and applies documented
// defaults for the optional ones.
func snapshotFromResponse(resp *external.CurrentWeatherResponse) (*entity.WeatherSnapshot, error) {
	if resp.Name == "" || resp.Main == nil || resp.Main.Temp == nil || len(resp.Weather) == 0 {
		return nil, model.NewError(model.KindParse, "response is missing required weather fields")
	}
	condition := resp.Weather[0]
	if condition.Main == "" || condition.Description == "" || condition.ID == 0 {
		return nil, model.NewError(model.KindParse, "response is missing required condition fields")
	}

	snapshot := &entity.WeatherSnapshot{
		CityName:    resp.Name,
		Temperature: *resp.Main.Temp,
		FeelsLike:   *resp.Main.Temp,
		ConditionID: condition.ID,
		Condition:   condition.Main,
		Description: condition.Description,
		Humidity:    resp.Main.Humidity,
		Pressure:    resp.Main.Pressure,
		Visibility:  resp.Visibility,
	}

	if resp.Main.FeelsLike != nil {
		snapshot.FeelsLike = *resp.Main.FeelsLike
	}
	if resp.Wind != nil {
		snapshot.WindSpeed = resp.Wind.Speed
		snapshot.WindDeg = resp.Wind.Deg
	}
	if resp.Clouds != nil {
		snapshot.Clouds = resp.Clouds.All
	}
	if resp.Sys != nil {
		snapshot.Sunrise = resp.Sys.Sunrise
		snapshot.Sunset = resp.Sys.Sunset
	}
	if resp.Rain != nil {
		snapshot.Rain1h = resp.Rain.OneHour
	}
	if resp.Snow != nil {
		snapshot.Snow1h = resp.Snow.OneHour
	}

	return snapshot, nil
}

type dayBucket struct {
	date        string
	maxTemp     float64
	minTemp     float64
	conditionID int
	description string
}

// groupForecastByDay buckets 3-hour entries by their provider-local calendar
// date, keeps min/max temperature per bucket and the first condition seen,
// and returns at most five days in chronological order. Entries without a
// condition still contribute their temperature to the bucket.
func groupForecastByDay(entries []external.ForecastEntry) []entity.ForecastDay {
	buckets := make(map[string]*dayBucket)
	order := make([]string, 0)

	for _, entry := range entries {
		fields := strings.SplitN(entry.DtTxt, " ", 2)
		date := fields[0]
		if date == "" {
			continue
		}

		bucket, ok := buckets[date]
		if !ok {
			bucket = &dayBucket{
				date:    date,
				maxTemp: entry.Main.Temp,
				minTemp: entry.Main.Temp,
			}
			buckets[date] = bucket
			order = append(order, date)
		} else {
			if entry.Main.Temp > bucket.maxTemp {
				bucket.maxTemp = entry.Main.Temp
			}
			if entry.Main.Temp < bucket.minTemp {
				bucket.minTemp = entry.Main.Temp
			}
		}

		if bucket.conditionID == 0 && len(entry.Weather) > 0 {
			bucket.conditionID = entry.Weather[0].ID
			bucket.description = entry.Weather[0].Description
		}
	}

	// Dates are "2006-01-02" strings, so lexical order is chronological.
	sort.Strings(order)
	if len(order) > forecastMaxDays {
		order = order[:forecastMaxDays]
	}

	days := make([]entity.ForecastDay, 0, len(order))
	for i, date := range order {
		bucket := buckets[date]
		days = append(days, entity.ForecastDay{
			Date:        bucket.date,
			Label:       dayLabel(i, bucket.date),
			ConditionID: bucket.conditionID,
			MaxTemp:     bucket.maxTemp,
			MinTemp:     bucket.minTemp,
			Description: bucket.description,
		})
	}
	return days
}

func dayLabel(index int, date string) string {
	switch index {
	case 0:
		return msg.GetMessage("forecast.label.today")
	case 1:
		return msg.GetMessage("forecast.label.tomorrow")
	}
	parsed, err := time.Parse(forecastDateOnly, date)
	if err != nil {
		return date
	}
	return parsed.Format("Mon")
}

func composeDisplayName(hit external.GeocodingResult) string {
	name := hit.Name
	if hit.State != "" {
		name += ", " + hit.State
	}
	if hit.Country != "" {
		name += ", " + hit.Country
	}
	return name
}
