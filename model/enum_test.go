package model

import "testing"

func TestResolveRange(t *testing.T) {
	tests := []struct {
		label    RangeLabel
		lookback string
		interval string
	}{
		{Range1D, "1d", "1h"},
		{Range5D, "5d", "1d"},
		{Range1M, "1mo", "1d"},
		{Range6M, "6mo", "1wk"},
		{RangeYTD, "ytd", "1mo"},
		{Range1Y, "1y", "1mo"},
		{Range5Y, "5y", "3mo"},
	}
	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			got := ResolveRange(tt.label)
			if got.Lookback != tt.lookback || got.Interval != tt.interval {
				t.Errorf("ResolveRange(%q) = %+v, want {%s %s}", tt.label, got, tt.lookback, tt.interval)
			}
		})
	}
}

func TestResolveRangeUnknownLabels(t *testing.T) {
	for _, label := range []RangeLabel{"", "2W", "max", "1m"} {
		got := ResolveRange(label)
		if got.Lookback != "1mo" || got.Interval != "1d" {
			t.Errorf("ResolveRange(%q) = %+v, want the 1mo/1d default", label, got)
		}
	}
}

func TestRangeLabelsOrder(t *testing.T) {
	want := []RangeLabel{"1D", "5D", "1M", "6M", "YTD", "1Y", "5Y"}
	got := RangeLabels()
	if len(got) != len(want) {
		t.Fatalf("RangeLabels() returned %d labels, want %d", len(got), len(want))
	}
	for i, label := range want {
		if got[i] != label {
			t.Errorf("RangeLabels()[%d] = %q, want %q", i, got[i], label)
		}
	}
}
