package model

import "time"

// Snapshot is the flattened set of company and quote attributes for one
// ticker. It is schemaless on purpose: the provider decides which keys exist
// and readers go through Field or FieldOr with their own fallback.
type Snapshot map[string]any

// Field returns the raw value for key and whether it was present.
func (s Snapshot) Field(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// FieldOr returns the raw value for key, or fallback when the key is absent.
func (s Snapshot) FieldOr(key string, fallback any) any {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

// DashboardQuery is the query contract of the dashboard endpoint.
type DashboardQuery struct {
	Ticker string `form:"ticker"`
	Range  string `form:"range"`
}

// PricePoint is one sampled bar reduced to what the chart draws.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Close     float64   `json:"close"`
}

// DisplayRow is one label/value line of a summary table. Value is always a
// fully formatted string so the page renders it untouched.
type DisplayRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DashboardData is everything one ticker submission renders.
type DashboardData struct {
	Symbol      string       `json:"symbol"`
	Name        string       `json:"name"`
	Range       RangeLabel   `json:"range"`
	Chart       []PricePoint `json:"chart"`
	ChartNotice string       `json:"chartNotice,omitempty"`
	StockInfo   []DisplayRow `json:"stockInfo"`
	PriceInfo   []DisplayRow `json:"priceInfo"`
	BizMetrics  []DisplayRow `json:"bizMetrics"`
}
