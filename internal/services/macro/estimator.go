package macro

import (
	"math"
	"time"

	"SignalDesk/internal/domain/models"
)

// Estimator derives the market regime from reference asset quotes.
type Estimator struct {
	referenceAssets []string
}

// NewEstimator creates a regime estimator over the given reference assets
// (typically bitcoin and ethereum). An empty list defaults to those two.
func NewEstimator(referenceAssets []string) *Estimator {
	if len(referenceAssets) == 0 {
		referenceAssets = []string{"bitcoin", "ethereum"}
	}
	return &Estimator{referenceAssets: referenceAssets}
}

// ReferenceAssets returns the asset ids the estimator reads from a snapshot.
func (e *Estimator) ReferenceAssets() []string {
	return e.referenceAssets
}

// Estimate computes the trend/volatility/liquidity triple from the snapshot.
// Reference assets missing from the snapshot contribute zero, so a fully
// empty snapshot degrades to Sideways / Calm / Unknown.
func (e *Estimator) Estimate(snapshot models.PriceSnapshot) models.MacroSnapshot {
	var changeSum, volumeSum float64
	for _, asset := range e.referenceAssets {
		quote, ok := snapshot[asset]
		if !ok {
			continue
		}
		changeSum += quote.Change24hPct
		volumeSum += quote.Volume24hUSD
	}
	avgChange := changeSum / float64(len(e.referenceAssets))

	trendLabel, trendDesc := trendFor(avgChange)
	volLabel, volDesc := volatilityFor(avgChange)
	liqLabel, liqDesc := liquidityFor(volumeSum)

	return models.MacroSnapshot{
		TrendLabel:      trendLabel,
		TrendDesc:       trendDesc,
		VolatilityLabel: volLabel,
		VolatilityDesc:  volDesc,
		LiquidityLabel:  liqLabel,
		LiquidityDesc:   liqDesc,
		UpdatedAt:       time.Now().UTC(),
	}
}

func trendFor(avgChange float64) (string, string) {
	switch {
	case avgChange > 3:
		return models.TrendStrongBull, "Majors firmly higher over the last 24h; momentum favors longs."
	case avgChange > 1:
		return models.TrendMildBull, "Majors grinding higher; constructive but not euphoric."
	case avgChange < -3:
		return models.TrendStrongBear, "Majors under heavy pressure; momentum favors shorts."
	case avgChange < -1:
		return models.TrendMildBear, "Majors drifting lower; caution on fresh longs."
	default:
		return models.TrendSideways, "Majors rangebound; no directional edge from price alone."
	}
}

func volatilityFor(avgChange float64) (string, string) {
	abs := math.Abs(avgChange)
	switch {
	case abs > 4:
		return models.VolHighStress, "Outsized 24h swings; size down and widen stops."
	case abs > 2:
		return models.VolElevated, "Above-normal movement; expect whipsaws around levels."
	default:
		return models.VolCalm, "Subdued ranges; conditions suit mean-reversion setups."
	}
}

func liquidityFor(totalVolume float64) (string, string) {
	switch {
	case totalVolume > 50e9:
		return models.LiqDeep, "Very heavy turnover across majors; exits should be painless."
	case totalVolume > 20e9:
		return models.LiqNormal, "Typical turnover across majors; standard sizing applies."
	case totalVolume > 0:
		return models.LiqThinner, "Light turnover across majors; slippage risk on size."
	default:
		return models.LiqUnknown, "No volume data available; treat depth as unknown."
	}
}
