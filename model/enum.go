package model

// RangeLabel is the time-frame choice offered on the dashboard.
type RangeLabel string

const (
	Range1D  RangeLabel = "1D"
	Range5D  RangeLabel = "5D"
	Range1M  RangeLabel = "1M"
	Range6M  RangeLabel = "6M"
	RangeYTD RangeLabel = "YTD"
	Range1Y  RangeLabel = "1Y"
	Range5Y  RangeLabel = "5Y"
)

// DefaultRange is pre-selected on the page and is what unknown labels
// resolve to.
const DefaultRange = Range1M

// RangeParams is the provider-side query pair a label resolves to: the total
// span to look back and the width of each sampled bar. Both tokens are passed
// to the market-data provider untouched.
type RangeParams struct {
	Lookback string
	Interval string
}

// ResolveRange maps a time-frame label to its lookback/interval pair.
// Unrecognised labels, the empty string included, take the default branch of
// one month of daily bars; no error is reported for them.
func ResolveRange(label RangeLabel) RangeParams {
	switch label {
	case Range1D:
		return RangeParams{Lookback: "1d", Interval: "1h"}
	case Range5D:
		return RangeParams{Lookback: "5d", Interval: "1d"}
	case Range1M:
		return RangeParams{Lookback: "1mo", Interval: "1d"}
	case Range6M:
		return RangeParams{Lookback: "6mo", Interval: "1wk"}
	case RangeYTD:
		return RangeParams{Lookback: "ytd", Interval: "1mo"}
	case Range1Y:
		return RangeParams{Lookback: "1y", Interval: "1mo"}
	case Range5Y:
		return RangeParams{Lookback: "5y", Interval: "3mo"}
	default:
		return RangeParams{Lookback: "1mo", Interval: "1d"}
	}
}

// RangeLabels lists the selectable time frames in display order.
func RangeLabels() []RangeLabel {
	return []RangeLabel{Range1D, Range5D, Range1M, Range6M, RangeYTD, Range1Y, Range5Y}
}
