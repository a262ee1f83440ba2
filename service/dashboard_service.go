package service

import (
	"context"
	"fmt"
	"strings"

	"finboard/customerrors"
	"finboard/model"
	"finboard/util"

	"github.com/rs/zerolog/log"
)

// MarketData is the slice of the market data provider the dashboard reads.
type MarketData interface {
	GetQuoteSnapshot(ctx context.Context, symbol string) (model.Snapshot, error)
	GetHistory(ctx context.Context, symbol string, params model.RangeParams) ([]model.PricePoint, error)
}

type DashboardService interface {
	BuildDashboard(ctx context.Context, ticker string, rangeLabel model.RangeLabel) (*model.DashboardData, error)
}

type DashboardServiceImpl struct {
	provider MarketData
}

func NewDashboardService(provider MarketData) DashboardService {
	return &DashboardServiceImpl{provider: provider}
}

// BuildDashboard assembles everything one submission renders: the sampled
// close-price series over the resolved range plus the three summary tables,
// every cell already formatted for display.
func (s *DashboardServiceImpl) BuildDashboard(ctx context.Context, ticker string, rangeLabel model.RangeLabel) (*model.DashboardData, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if symbol == "" {
		return nil, customerrors.ErrEmptyTicker
	}
	if rangeLabel == "" {
		rangeLabel = model.DefaultRange
	}

	snapshot, err := s.provider.GetQuoteSnapshot(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("dashboard for %s: %w", symbol, err)
	}

	history, err := s.provider.GetHistory(ctx, symbol, model.ResolveRange(rangeLabel))
	if err != nil {
		return nil, fmt.Errorf("dashboard for %s: %w", symbol, err)
	}

	data := &model.DashboardData{
		Symbol:     symbol,
		Name:       util.FormatPlain(snapshot.FieldOr("longName", nil)),
		Range:      rangeLabel,
		Chart:      history,
		StockInfo:  buildStockInfo(snapshot),
		PriceInfo:  buildPriceInfo(snapshot),
		BizMetrics: buildBizMetrics(snapshot),
	}
	if len(history) == 0 {
		data.ChartNotice = "No historical data available for the selected period."
	}

	log.Info().
		Str("symbol", symbol).
		Str("range", string(rangeLabel)).
		Int("bars", len(history)).
		Msg("Dashboard built")

	return data, nil
}

func buildStockInfo(snapshot model.Snapshot) []model.DisplayRow {
	return []model.DisplayRow{
		{Label: "Country", Value: util.FormatPlain(snapshot.FieldOr("country", nil))},
		{Label: "Sector", Value: util.FormatPlain(snapshot.FieldOr("sector", nil))},
		{Label: "Industry", Value: util.FormatPlain(snapshot.FieldOr("industry", nil))},
		{Label: "Market Cap", Value: util.FormatMagnitude(snapshot.FieldOr("marketCap", nil))},
		{Label: "Enterprise Value", Value: util.FormatMagnitude(snapshot.FieldOr("enterpriseValue", nil))},
		{Label: "Employees", Value: util.FormatPlain(snapshot.FieldOr("fullTimeEmployees", nil))},
	}
}

// Price cells keep their dollar prefix even when the field is missing, so an
// absent dayHigh renders as "$N/A".
func buildPriceInfo(snapshot model.Snapshot) []model.DisplayRow {
	fields := []struct{ label, key string }{
		{"Current Price", "currentPrice"},
		{"Previous Close", "previousClose"},
		{"Day High", "dayHigh"},
		{"Day Low", "dayLow"},
		{"52 Week High", "fiftyTwoWeekHigh"},
		{"52 Week Low", "fiftyTwoWeekLow"},
	}

	rows := make([]model.DisplayRow, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, model.DisplayRow{
			Label: f.label,
			Value: "$" + util.SafeFormat(snapshot.FieldOr(f.key, nil), 2),
		})
	}
	return rows
}

func buildBizMetrics(snapshot model.Snapshot) []model.DisplayRow {
	recommendation := "N/A"
	if v, ok := snapshot.Field("recommendationKey"); ok {
		recommendation = util.Capitalize(util.FormatPlain(v))
	}

	// A missing yield counts as zero, so it renders "0.00%" rather than N/A.
	yield := util.ScaleNumber(snapshot.FieldOr("dividendYield", 0.0), 100)

	return []model.DisplayRow{
		{Label: "EPS (FWD)", Value: util.SafeFormat(snapshot.FieldOr("forwardEps", nil), 2)},
		{Label: "P/E (FWD)", Value: util.SafeFormat(snapshot.FieldOr("forwardPE", nil), 2)},
		{Label: "PEG Ratio", Value: util.SafeFormat(snapshot.FieldOr("pegRatio", nil), 2)},
		{Label: "Dividend Rate (FWD)", Value: "$" + util.SafeFormat(snapshot.FieldOr("dividendRate", nil), 2)},
		{Label: "Dividend Yield (FWD)", Value: util.SafeFormat(yield, 2) + "%"},
		{Label: "Recommendation", Value: recommendation},
	}
}
