package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"finboard/customerrors"
	"finboard/middleware"
	"finboard/model"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const quoteSummaryModules = "assetProfile,price,summaryDetail,financialData,defaultKeyStatistics"

type YahooClient struct {
	client *resty.Client
}

func NewYahooClient(cfg *model.EnvConfig) *YahooClient {
	client := resty.New().
		SetBaseURL(cfg.YahooBaseUrl).
		SetTimeout(time.Duration(cfg.RequestTimeoutSec) * time.Second).
		SetHeaders(map[string]string{
			"Content-Type":    "application/json",
			"Accept":          "application/json",
			"Accept-Encoding": "gzip, deflate, br",
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	// Bodies are unmarshalled by hand after this hook has run; resty's
	// SetResult decoding fires before user response middlewares.
	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &YahooClient{
		client: client,
	}
}

// GetQuoteSnapshot fetches the quoteSummary modules for symbol and flattens
// them into a single key/value snapshot.
func (y *YahooClient) GetQuoteSnapshot(ctx context.Context, symbol string) (model.Snapshot, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParam("modules", quoteSummaryModules).
		Get("/v10/finance/quoteSummary/" + url.PathEscape(symbol))

	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("Yahoo quote summary call failed")
		return nil, fmt.Errorf("quote summary request for %s failed: %w", symbol, err)
	}

	var summaryResponse model.YahooQuoteSummaryResponse
	if err := json.Unmarshal(resp.Body(), &summaryResponse); err != nil {
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("quote summary request for %s failed with status %d", symbol, resp.StatusCode())
		}
		log.Error().Err(err).Str("symbol", symbol).Msg("Yahoo quote summary decode failed")
		return nil, fmt.Errorf("quote summary decode for %s failed: %w", symbol, err)
	}
	if apiErr := summaryResponse.QuoteSummary.Error; apiErr != nil {
		log.Error().Str("symbol", symbol).Str("code", apiErr.Code).Msg("Yahoo quote summary rejected")
		return nil, fmt.Errorf("quote summary for %s rejected: %s: %s", symbol, apiErr.Code, apiErr.Description)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("quote summary request for %s failed with status %d", symbol, resp.StatusCode())
	}
	if len(summaryResponse.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrNoQuoteData, symbol)
	}

	return flattenModules(summaryResponse.QuoteSummary.Result[0]), nil
}

// GetHistory fetches sampled price bars for symbol over the resolved range.
// Bars the provider nulls out, weekends and holidays mostly, are skipped.
func (y *YahooClient) GetHistory(ctx context.Context, symbol string, params model.RangeParams) ([]model.PricePoint, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    params.Lookback,
			"interval": params.Interval,
		}).
		Get("/v8/finance/chart/" + url.PathEscape(symbol))

	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("Yahoo chart call failed")
		return nil, fmt.Errorf("chart request for %s failed: %w", symbol, err)
	}

	var chartResponse model.YahooChartResponse
	if err := json.Unmarshal(resp.Body(), &chartResponse); err != nil {
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("chart request for %s failed with status %d", symbol, resp.StatusCode())
		}
		log.Error().Err(err).Str("symbol", symbol).Msg("Yahoo chart decode failed")
		return nil, fmt.Errorf("chart decode for %s failed: %w", symbol, err)
	}
	if apiErr := chartResponse.Chart.Error; apiErr != nil {
		log.Error().Str("symbol", symbol).Str("code", apiErr.Code).Msg("Yahoo chart rejected")
		return nil, fmt.Errorf("chart for %s rejected: %s: %s", symbol, apiErr.Code, apiErr.Description)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("chart request for %s failed with status %d", symbol, resp.StatusCode())
	}
	if len(chartResponse.Chart.Result) == 0 {
		return []model.PricePoint{}, nil
	}

	result := chartResponse.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return []model.PricePoint{}, nil
	}

	closes := result.Indicators.Quote[0].Close
	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, model.PricePoint{
			Timestamp: time.Unix(ts, 0).UTC(),
			Close:     *closes[i],
		})
	}

	return points, nil
}

// flattenModules merges the per-module field maps into one flat snapshot.
// Wrapped {"raw": n, "fmt": "..."} values reduce to their raw number and
// empty value objects are dropped.
func flattenModules(modules map[string]map[string]any) model.Snapshot {
	snapshot := make(model.Snapshot)
	for _, fields := range modules {
		for key, value := range fields {
			if obj, ok := value.(map[string]any); ok {
				if len(obj) == 0 {
					continue
				}
				if raw, exists := obj["raw"]; exists {
					snapshot[key] = raw
					continue
				}
			}
			snapshot[key] = value
		}
	}
	return snapshot
}
