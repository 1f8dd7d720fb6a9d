package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/model/external"
)

func newTestGateway(t *testing.T, handler http.Handler) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenWeatherGateway(OpenWeatherConfig{
		BaseURL:        server.URL,
		GeoBaseURL:     server.URL,
		APIKey:         "test-key",
		Lang:           "vi",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	})
}

const fullWeatherJSON = `{
	"name": "Hanoi",
	"visibility": 10000,
	"main": {"temp": 28.4, "feels_like": 31.2, "humidity": 74, "pressure": 1009},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain"}],
	"wind": {"speed": 3.6, "deg": 140},
	"clouds": {"all": 75},
	"sys": {"country": "VN", "sunrise": 1700000000, "sunset": 1700040000},
	"rain": {"1h": 0.4}
}`

func TestFetchCurrentByCityParsesFullResponse(t *testing.T) {
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Hanoi" {
			t.Errorf("expected q=Hanoi, got %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected units=metric, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fullWeatherJSON))
	}))

	snapshot, err := gateway.FetchCurrentByCity(context.Background(), "Hanoi")
	if err != nil {
		t.Fatalf("FetchCurrentByCity failed: %v", err)
	}

	if snapshot.CityName != "Hanoi" {
		t.Errorf("expected city Hanoi, got %q", snapshot.CityName)
	}
	if snapshot.Temperature != 28.4 {
		t.Errorf("expected temperature 28.4, got %v", snapshot.Temperature)
	}
	if snapshot.FeelsLike != 31.2 {
		t.Errorf("expected feels-like 31.2, got %v", snapshot.FeelsLike)
	}
	if snapshot.ConditionID != 500 || snapshot.Condition != "Rain" {
		t.Errorf("unexpected condition: %d %q", snapshot.ConditionID, snapshot.Condition)
	}
	if snapshot.WindSpeed != 3.6 || snapshot.WindDeg != 140 {
		t.Errorf("unexpected wind: %v %d", snapshot.WindSpeed, snapshot.WindDeg)
	}
	if snapshot.Clouds != 75 || snapshot.Visibility != 10000 {
		t.Errorf("unexpected clouds/visibility: %d %d", snapshot.Clouds, snapshot.Visibility)
	}
	if snapshot.Rain1h != 0.4 {
		t.Errorf("expected rain 0.4, got %v", snapshot.Rain1h)
	}
	if snapshot.Sunrise != 1700000000 || snapshot.Sunset != 1700040000 {
		t.Errorf("unexpected sun times: %d %d", snapshot.Sunrise, snapshot.Sunset)
	}
}

func TestFetchCurrentAppliesOptionalDefaults(t *testing.T) {
	minimal := `{
		"name": "Hanoi",
		"main": {"temp": 22.0},
		"weather": [{"id": 800, "main": "Clear", "description": "clear sky"}]
	}`
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(minimal))
	}))

	snapshot, err := gateway.FetchCurrentByCity(context.Background(), "Hanoi")
	if err != nil {
		t.Fatalf("FetchCurrentByCity failed: %v", err)
	}

	if snapshot.FeelsLike != snapshot.Temperature {
		t.Errorf("expected feels-like to default to temperature, got %v", snapshot.FeelsLike)
	}
	if snapshot.WindSpeed != 0 || snapshot.Humidity != 0 || snapshot.Clouds != 0 {
		t.Errorf("expected zero defaults for absent fields: %+v", snapshot)
	}
}

func TestFetchCurrentMissingRequiredFieldsIsParseError(t *testing.T) {
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "Hanoi", "weather": []}`))
	}))

	_, err := gateway.FetchCurrentByCity(context.Background(), "Hanoi")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if model.KindOf(err) != model.KindParse {
		t.Fatalf("expected PARSE_ERROR, got %v", model.KindOf(err))
	}
}

func TestFetchCurrentStatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind model.ErrorKind
	}{
		{"not found", http.StatusNotFound, `{"cod": "404", "message": "city not found"}`, model.KindHTTPStatus},
		{"unauthorized", http.StatusUnauthorized, `{"cod": 401, "message": "Invalid API key"}`, model.KindHTTPStatus},
		{"quota", http.StatusTooManyRequests, `{"cod": 429, "message": "quota exceeded"}`, model.KindQuotaExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := gateway.FetchCurrentByCity(context.Background(), "Hanoi")
			if err == nil {
				t.Fatal("expected an error")
			}
			if model.KindOf(err) != tt.wantKind {
				t.Fatalf("expected kind %v, got %v (%v)", tt.wantKind, model.KindOf(err), err)
			}
		})
	}
}

func TestFetchCurrentUnreachableHostIsNetworkError(t *testing.T) {
	gateway := NewOpenWeatherGateway(OpenWeatherConfig{
		BaseURL:        "http://127.0.0.1:1",
		APIKey:         "test-key",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	})

	_, err := gateway.FetchCurrentByCity(context.Background(), "Hanoi")
	if err == nil {
		t.Fatal("expected a network error")
	}
	if model.KindOf(err) != model.KindNetwork {
		t.Fatalf("expected NETWORK_ERROR, got %v", model.KindOf(err))
	}
}

func TestFetchForecastGroupsAndSortsDays(t *testing.T) {
	forecastJSON := `{"list": [
		{"dt_txt": "2026-09-02 00:00:00", "main": {"temp": 24.0}, "weather": [{"id": 802, "main": "Clouds", "description": "scattered clouds"}]},
		{"dt_txt": "2026-09-01 09:00:00", "main": {"temp": 27.0}, "weather": [{"id": 500, "main": "Rain", "description": "light rain"}]},
		{"dt_txt": "2026-09-01 12:00:00", "main": {"temp": 31.5}, "weather": [{"id": 501, "main": "Rain", "description": "moderate rain"}]},
		{"dt_txt": "2026-09-01 15:00:00", "main": {"temp": 29.0}, "weather": [{"id": 500, "main": "Rain", "description": "light rain"}]},
		{"dt_txt": "2026-09-02 12:00:00", "main": {"temp": 30.0}, "weather": [{"id": 800, "main": "Clear", "description": "clear sky"}]}
	]}`
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/forecast" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastJSON))
	}))

	days, err := gateway.FetchForecast(context.Background(), "Hanoi")
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	first := days[0]
	if first.Date != "2026-09-01" {
		t.Fatalf("expected the earlier day first, got %q", first.Date)
	}
	if first.Label != "today" {
		t.Errorf("expected label today, got %q", first.Label)
	}
	if first.MinTemp != 27.0 || first.MaxTemp != 31.5 {
		t.Errorf("unexpected min/max: %v/%v", first.MinTemp, first.MaxTemp)
	}
	if first.ConditionID != 500 || first.Description != "light rain" {
		t.Errorf("expected the first entry's condition, got %d %q", first.ConditionID, first.Description)
	}

	second := days[1]
	if second.Date != "2026-09-02" || second.Label != "tomorrow" {
		t.Errorf("unexpected second day: %+v", second)
	}
	if second.MinTemp != 24.0 || second.MaxTemp != 30.0 {
		t.Errorf("unexpected min/max: %v/%v", second.MinTemp, second.MaxTemp)
	}
}

func TestFetchForecastEmptyListIsNoData(t *testing.T) {
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list": []}`))
	}))

	_, err := gateway.FetchForecast(context.Background(), "Hanoi")
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.KindOf(err) != model.KindNoData {
		t.Fatalf("expected NO_DATA_AVAILABLE, got %v", model.KindOf(err))
	}
}

func TestGroupForecastTruncatesToFiveDays(t *testing.T) {
	entries := make([]external.ForecastEntry, 0, 7)
	for _, date := range []string{"2026-09-01", "2026-09-02", "2026-09-03", "2026-09-04", "2026-09-05", "2026-09-06", "2026-09-07"} {
		entries = append(entries, external.ForecastEntry{
			DtTxt:   date + " 12:00:00",
			Main:    external.ForecastMain{Temp: 25},
			Weather: []external.WeatherCondition{{ID: 800, Main: "Clear", Description: "clear sky"}},
		})
	}

	days := groupForecastByDay(entries)
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if days[2].Label == "today" || days[2].Label == "tomorrow" {
		t.Fatalf("expected a weekday label from the third day on, got %q", days[2].Label)
	}
}

func TestGroupForecastFoldsEntriesWithoutConditions(t *testing.T) {
	entries := []external.ForecastEntry{
		{DtTxt: "2026-09-01 00:00:00", Main: external.ForecastMain{Temp: 21.0}},
		{DtTxt: "2026-09-01 06:00:00", Main: external.ForecastMain{Temp: 24.5}, Weather: []external.WeatherCondition{{ID: 500, Main: "Rain", Description: "light rain"}}},
		{DtTxt: "2026-09-01 12:00:00", Main: external.ForecastMain{Temp: 33.0}},
	}

	days := groupForecastByDay(entries)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	day := days[0]
	if day.MinTemp != 21.0 {
		t.Errorf("expected min 21.0 from the conditionless entry, got %v", day.MinTemp)
	}
	if day.MaxTemp != 33.0 {
		t.Errorf("expected max 33.0 from the conditionless entry, got %v", day.MaxTemp)
	}
	if day.ConditionID != 500 || day.Description != "light rain" {
		t.Errorf("expected the first reported condition, got %d %q", day.ConditionID, day.Description)
	}
}

func TestSearchCitiesComposesDisplayName(t *testing.T) {
	geoJSON := `[
		{"name": "Hanoi", "lat": 21.0285, "lon": 105.8542, "country": "VN"},
		{"name": "Paris", "lat": 48.8589, "lon": 2.3200, "state": "Ile-de-France", "country": "FR"}
	]`
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geo/1.0/direct" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("expected default limit 5, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geoJSON))
	}))

	results, err := gateway.SearchCities(context.Background(), "name", 0)
	if err != nil {
		t.Fatalf("SearchCities failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].DisplayName != "Hanoi, VN" {
		t.Errorf("expected display name without state, got %q", results[0].DisplayName)
	}
	if results[1].DisplayName != "Paris, Ile-de-France, FR" {
		t.Errorf("expected display name with state, got %q", results[1].DisplayName)
	}
}
