package model

import "time"

// TrendLabel is a coarse classification of price direction over a window.
type TrendLabel string

const (
	TrendStronglyBullish TrendLabel = "strongly bullish"
	TrendSlightlyBullish TrendLabel = "slightly bullish"
	TrendSlightlyBearish TrendLabel = "slightly bearish"
	TrendStronglyBearish TrendLabel = "strongly bearish"
)

// VolatilityLabel is a coarse classification of the observed price range.
type VolatilityLabel string

const (
	VolatilityHigh     VolatilityLabel = "high"
	VolatilityModerate VolatilityLabel = "moderate"
	VolatilityLow      VolatilityLabel = "low"
)

// Summary is the read-only statistical digest of one PriceSeries.
// It is computed once and never mutated.
type Summary struct {
	Points          int
	FirstTime       time.Time
	LastTime        time.Time
	First           float64
	Last            float64
	Min             float64
	Max             float64
	Average         float64
	AbsoluteChange  float64
	PercentChange   float64
	VolatilityRatio float64
	Trend           TrendLabel
	Volatility      VolatilityLabel
}
