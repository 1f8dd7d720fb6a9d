package entity

// ForecastDay is one calendar day aggregated from the provider's
// 3-hour-interval forecast entries.
type ForecastDay struct {
	Date        string  `json:"date"` // "2006-01-02", provider-local
	Label       string  `json:"label"`
	ConditionID int     `json:"conditionId"`
	MaxTemp     float64 `json:"maxTemp"`
	MinTemp     float64 `json:"minTemp"`
	Description string  `json:"description"`
}
