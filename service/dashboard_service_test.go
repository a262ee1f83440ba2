package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"finboard/customerrors"
	"finboard/model"
)

type stubMarketData struct {
	snapshot  model.Snapshot
	history   []model.PricePoint
	snapErr   error
	histErr   error
	gotSymbol string
	gotParams model.RangeParams
}

func (s *stubMarketData) GetQuoteSnapshot(ctx context.Context, symbol string) (model.Snapshot, error) {
	s.gotSymbol = symbol
	return s.snapshot, s.snapErr
}

func (s *stubMarketData) GetHistory(ctx context.Context, symbol string, params model.RangeParams) ([]model.PricePoint, error) {
	s.gotParams = params
	return s.history, s.histErr
}

func rowValue(t *testing.T, rows []model.DisplayRow, label string) string {
	t.Helper()
	for _, row := range rows {
		if row.Label == label {
			return row.Value
		}
	}
	t.Fatalf("row %q not found", label)
	return ""
}

func TestBuildDashboardFormatsTables(t *testing.T) {
	stub := &stubMarketData{
		snapshot: model.Snapshot{
			"longName":          "Apple Inc.",
			"country":           "United States",
			"sector":            "Technology",
			"industry":          "Consumer Electronics",
			"marketCap":         2750000000000.0,
			"fullTimeEmployees": 164000.0,
			"currentPrice":      191.25,
			"previousClose":     189.5,
			"fiftyTwoWeekHigh":  199.5,
			"fiftyTwoWeekLow":   164.25,
			"forwardEps":        6.42,
			"forwardPE":         29.1,
			"dividendYield":     0.0044,
			"recommendationKey": "strong_buy",
		},
		history: []model.PricePoint{
			{Timestamp: time.Unix(1700000000, 0).UTC(), Close: 189.5},
			{Timestamp: time.Unix(1700086400, 0).UTC(), Close: 191.25},
		},
	}

	data, err := NewDashboardService(stub).BuildDashboard(context.Background(), "AAPL", model.Range6M)
	if err != nil {
		t.Fatalf("BuildDashboard returned error: %v", err)
	}

	if stub.gotParams != (model.RangeParams{Lookback: "6mo", Interval: "1wk"}) {
		t.Errorf("history queried with %+v, want the resolved 6M pair", stub.gotParams)
	}
	if data.Name != "Apple Inc." {
		t.Errorf("Name = %q", data.Name)
	}
	if data.ChartNotice != "" {
		t.Errorf("unexpected chart notice %q", data.ChartNotice)
	}
	if len(data.Chart) != 2 {
		t.Errorf("Chart has %d points, want 2", len(data.Chart))
	}

	stockChecks := map[string]string{
		"Country":          "United States",
		"Sector":           "Technology",
		"Industry":         "Consumer Electronics",
		"Market Cap":       "$2.8T",
		"Enterprise Value": "N/A",
		"Employees":        "164000",
	}
	for label, want := range stockChecks {
		if got := rowValue(t, data.StockInfo, label); got != want {
			t.Errorf("stock info %q = %q, want %q", label, got, want)
		}
	}

	priceChecks := map[string]string{
		"Current Price":  "$191.25",
		"Previous Close": "$189.50",
		"Day High":       "$N/A",
		"Day Low":        "$N/A",
		"52 Week High":   "$199.50",
		"52 Week Low":    "$164.25",
	}
	for label, want := range priceChecks {
		if got := rowValue(t, data.PriceInfo, label); got != want {
			t.Errorf("price info %q = %q, want %q", label, got, want)
		}
	}

	bizChecks := map[string]string{
		"EPS (FWD)":            "6.42",
		"P/E (FWD)":            "29.10",
		"PEG Ratio":            "N/A",
		"Dividend Rate (FWD)":  "$N/A",
		"Dividend Yield (FWD)": "0.44%",
		"Recommendation":       "Strong_buy",
	}
	for label, want := range bizChecks {
		if got := rowValue(t, data.BizMetrics, label); got != want {
			t.Errorf("business metric %q = %q, want %q", label, got, want)
		}
	}
}

func TestBuildDashboardSparseSnapshot(t *testing.T) {
	stub := &stubMarketData{snapshot: model.Snapshot{}}

	data, err := NewDashboardService(stub).BuildDashboard(context.Background(), "AAPL", model.Range1M)
	if err != nil {
		t.Fatalf("BuildDashboard returned error: %v", err)
	}

	if data.Name != "N/A" {
		t.Errorf("Name = %q, want N/A", data.Name)
	}
	if got := rowValue(t, data.StockInfo, "Market Cap"); got != "N/A" {
		t.Errorf("Market Cap = %q, want N/A", got)
	}
	if got := rowValue(t, data.PriceInfo, "Current Price"); got != "$N/A" {
		t.Errorf("Current Price = %q, want $N/A with the prefix kept", got)
	}
	if got := rowValue(t, data.BizMetrics, "Dividend Yield (FWD)"); got != "0.00%" {
		t.Errorf("missing yield = %q, want 0.00%%", got)
	}
	if got := rowValue(t, data.BizMetrics, "Recommendation"); got != "N/A" {
		t.Errorf("missing recommendation = %q, want N/A", got)
	}
}

func TestBuildDashboardEmptyTicker(t *testing.T) {
	for _, ticker := range []string{"", "   "} {
		stub := &stubMarketData{}
		_, err := NewDashboardService(stub).BuildDashboard(context.Background(), ticker, model.Range1M)
		if !errors.Is(err, customerrors.ErrEmptyTicker) {
			t.Errorf("ticker %q: err = %v, want ErrEmptyTicker", ticker, err)
		}
		if stub.gotSymbol != "" {
			t.Errorf("ticker %q: provider should not be called, got symbol %q", ticker, stub.gotSymbol)
		}
	}
}

func TestBuildDashboardNormalisesTicker(t *testing.T) {
	stub := &stubMarketData{snapshot: model.Snapshot{}}
	data, err := NewDashboardService(stub).BuildDashboard(context.Background(), "  aapl ", model.Range1M)
	if err != nil {
		t.Fatalf("BuildDashboard returned error: %v", err)
	}
	if stub.gotSymbol != "AAPL" || data.Symbol != "AAPL" {
		t.Errorf("symbol = %q / %q, want AAPL after trim and upper-case", stub.gotSymbol, data.Symbol)
	}
}

func TestBuildDashboardDefaultsRange(t *testing.T) {
	stub := &stubMarketData{snapshot: model.Snapshot{}}
	data, err := NewDashboardService(stub).BuildDashboard(context.Background(), "AAPL", "")
	if err != nil {
		t.Fatalf("BuildDashboard returned error: %v", err)
	}
	if stub.gotParams != (model.RangeParams{Lookback: "1mo", Interval: "1d"}) {
		t.Errorf("history queried with %+v, want the default pair", stub.gotParams)
	}
	if data.Range != model.DefaultRange {
		t.Errorf("Range = %q, want %q", data.Range, model.DefaultRange)
	}
}

func TestBuildDashboardEmptyHistoryNotice(t *testing.T) {
	stub := &stubMarketData{snapshot: model.Snapshot{}, history: []model.PricePoint{}}
	data, err := NewDashboardService(stub).BuildDashboard(context.Background(), "AAPL", model.Range1D)
	if err != nil {
		t.Fatalf("BuildDashboard returned error: %v", err)
	}
	if data.ChartNotice != "No historical data available for the selected period." {
		t.Errorf("ChartNotice = %q", data.ChartNotice)
	}
}

func TestBuildDashboardProviderError(t *testing.T) {
	boom := errors.New("provider down")
	stub := &stubMarketData{snapErr: boom}
	_, err := NewDashboardService(stub).BuildDashboard(context.Background(), "AAPL", model.Range1M)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the provider error wrapped", err)
	}
}
