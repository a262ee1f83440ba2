package model

// YahooChartResponse is the top-level container
type YahooChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []ChartResult `json:"result"`
	Error  *YahooError   `json:"error"`
}

type ChartResult struct {
	Meta       ChartMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

type ChartMeta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the per-bar arrays. Entries are pointers because the provider
// fills session gaps with JSON nulls.
type Quote struct {
	Low    []*float64 `json:"low"`
	High   []*float64 `json:"high"`
	Open   []*float64 `json:"open"`
	Volume []*int64   `json:"volume"`
	Close  []*float64 `json:"close"`
}

// YahooError is the error object both Yahoo endpoints embed on failure.
type YahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooQuoteSummaryResponse is the top-level container of the quoteSummary
// endpoint. Each result entry maps module name to field name to value, and
// numeric values arrive wrapped as {"raw": n, "fmt": "..."} objects.
type YahooQuoteSummaryResponse struct {
	QuoteSummary QuoteSummaryData `json:"quoteSummary"`
}

type QuoteSummaryData struct {
	Result []map[string]map[string]any `json:"result"`
	Error  *YahooError                 `json:"error"`
}
