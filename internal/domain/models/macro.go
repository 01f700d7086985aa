package models

import "time"

// AssetQuote is one asset's latest price statistics.
type AssetQuote struct {
	PriceUSD     float64 `json:"usd"`
	Change24hPct float64 `json:"usd_24h_change"`
	Volume24hUSD float64 `json:"usd_24h_vol"`
}

// PriceSnapshot maps asset id to its latest quote.
type PriceSnapshot map[string]AssetQuote

// Trend labels.
const (
	TrendStrongBull = "Strong Bull"
	TrendMildBull   = "Mild Bull"
	TrendSideways   = "Sideways"
	TrendMildBear   = "Mild Bear"
	TrendStrongBear = "Strong Bear"
)

// Volatility labels.
const (
	VolCalm       = "Calm"
	VolElevated   = "Elevated"
	VolHighStress = "High Stress"
)

// Liquidity labels.
const (
	LiqUnknown = "Unknown"
	LiqThinner = "Thinner"
	LiqNormal  = "Normal"
	LiqDeep    = "Deep"
)

// MacroSnapshot is the trend/volatility/liquidity triple describing current
// market conditions. Recomputed wholesale on every price refresh.
type MacroSnapshot struct {
	TrendLabel      string    `json:"trendLabel"`
	TrendDesc       string    `json:"trendDesc"`
	VolatilityLabel string    `json:"volatilityLabel"`
	VolatilityDesc  string    `json:"volatilityDesc"`
	LiquidityLabel  string    `json:"liquidityLabel"`
	LiquidityDesc   string    `json:"liquidityDesc"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Bullish reports whether the trend label reads bullish.
func (m MacroSnapshot) Bullish() bool {
	return m.TrendLabel == TrendStrongBull || m.TrendLabel == TrendMildBull
}

// Bearish reports whether the trend label reads bearish.
func (m MacroSnapshot) Bearish() bool {
	return m.TrendLabel == TrendStrongBear || m.TrendLabel == TrendMildBear
}
