package analyzer

import "TokenPulse/internal/model"

// Trend thresholds on percent change. Comparisons are strict (>), so the
// boundary values 5, 0 and -5 fall into the next band down.
var trendBands = []struct {
	Above float64
	Label model.TrendLabel
}{
	{5, model.TrendStronglyBullish},
	{0, model.TrendSlightlyBullish},
	{-5, model.TrendSlightlyBearish},
}

// classifyTrend maps a percent change to its trend band.
func classifyTrend(pctChange float64) model.TrendLabel {
	for _, b := range trendBands {
		if pctChange > b.Above {
			return b.Label
		}
	}
	return model.TrendStronglyBearish
}

// Volatility thresholds on the volatility ratio, strict (>) as above.
var volatilityBands = []struct {
	Above float64
	Label model.VolatilityLabel
}{
	{10, model.VolatilityHigh},
	{5, model.VolatilityModerate},
}

// classifyVolatility maps a volatility ratio to its band.
func classifyVolatility(ratio float64) model.VolatilityLabel {
	for _, b := range volatilityBands {
		if ratio > b.Above {
			return b.Label
		}
	}
	return model.VolatilityLow
}
