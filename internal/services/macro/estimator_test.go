package macro

import (
	"testing"

	"SignalDesk/internal/domain/models"
)

func snapshotWith(btcChange, ethChange, btcVol, ethVol float64) models.PriceSnapshot {
	return models.PriceSnapshot{
		"bitcoin":  {Change24hPct: btcChange, Volume24hUSD: btcVol},
		"ethereum": {Change24hPct: ethChange, Volume24hUSD: ethVol},
	}
}

func TestTrendBoundaries(t *testing.T) {
	e := NewEstimator(nil)

	cases := []struct {
		name      string
		btc, eth  float64
		wantTrend string
	}{
		{"exactly three stays mild bull", 3.0, 3.0, models.TrendMildBull},
		{"just above three is strong bull", 3.01, 3.01, models.TrendStrongBull},
		{"just above one is mild bull", 1.5, 0.7, models.TrendMildBull},
		{"exactly one holds sideways", 1.0, 1.0, models.TrendSideways},
		{"exactly minus one holds sideways", -1.0, -1.0, models.TrendSideways},
		{"just below minus one is mild bear", -1.2, -1.2, models.TrendMildBear},
		{"just below minus three is strong bear", -3.5, -3.5, models.TrendStrongBear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Estimate(snapshotWith(tc.btc, tc.eth, 0, 0))
			if got.TrendLabel != tc.wantTrend {
				t.Fatalf("expected %q, got %q", tc.wantTrend, got.TrendLabel)
			}
		})
	}
}

func TestVolatilityBoundaries(t *testing.T) {
	e := NewEstimator(nil)

	cases := []struct {
		avg     float64
		wantVol string
	}{
		{2.0, models.VolCalm},
		{2.01, models.VolElevated},
		{4.0, models.VolElevated},
		{4.01, models.VolHighStress},
		{-4.5, models.VolHighStress},
	}
	for _, tc := range cases {
		got := e.Estimate(snapshotWith(tc.avg, tc.avg, 0, 0))
		if got.VolatilityLabel != tc.wantVol {
			t.Fatalf("avg %.2f: expected %q, got %q", tc.avg, tc.wantVol, got.VolatilityLabel)
		}
	}
}

func TestLiquidityBoundaries(t *testing.T) {
	e := NewEstimator(nil)

	cases := []struct {
		btcVol, ethVol float64
		wantLiq        string
	}{
		{30e9, 25e9, models.LiqDeep},
		{30e9, 20e9, models.LiqNormal},
		{15e9, 5e9, models.LiqThinner},
		{10e9, 5e9, models.LiqThinner},
		{0, 0, models.LiqUnknown},
	}
	for _, tc := range cases {
		got := e.Estimate(snapshotWith(0, 0, tc.btcVol, tc.ethVol))
		if got.LiquidityLabel != tc.wantLiq {
			t.Fatalf("volumes %g+%g: expected %q, got %q", tc.btcVol, tc.ethVol, tc.wantLiq, got.LiquidityLabel)
		}
	}
}

func TestEstimateEmptySnapshot(t *testing.T) {
	e := NewEstimator(nil)

	got := e.Estimate(models.PriceSnapshot{})

	if got.TrendLabel != models.TrendSideways {
		t.Fatalf("expected Sideways, got %q", got.TrendLabel)
	}
	if got.VolatilityLabel != models.VolCalm {
		t.Fatalf("expected Calm, got %q", got.VolatilityLabel)
	}
	if got.LiquidityLabel != models.LiqUnknown {
		t.Fatalf("expected Unknown, got %q", got.LiquidityLabel)
	}
}

func TestEstimateStressScenario(t *testing.T) {
	e := NewEstimator(nil)

	got := e.Estimate(snapshotWith(5, 4, 40e9, 15e9))

	if got.TrendLabel != models.TrendStrongBull {
		t.Fatalf("expected Strong Bull, got %q", got.TrendLabel)
	}
	if got.VolatilityLabel != models.VolHighStress {
		t.Fatalf("expected High Stress, got %q", got.VolatilityLabel)
	}
	if got.LiquidityLabel != models.LiqDeep {
		t.Fatalf("expected Deep, got %q", got.LiquidityLabel)
	}
	if !got.Bullish() || got.Bearish() {
		t.Fatal("snapshot should read bullish")
	}
	if got.TrendDesc == "" || got.VolatilityDesc == "" || got.LiquidityDesc == "" {
		t.Fatal("descriptions must be populated")
	}
}
