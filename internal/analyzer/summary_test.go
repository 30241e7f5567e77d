package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TokenPulse/internal/model"
)

func TestSummarize_EmptySeries(t *testing.T) {
	_, err := Summarize(model.PriceSeries{})
	require.ErrorIs(t, err, ErrEmptySeries)

	_, err = Summarize(nil)
	require.ErrorIs(t, err, ErrEmptySeries)
}

func TestSummarize_ZeroBasePrice(t *testing.T) {
	series := model.PriceSeries{
		{UnixTime: 0, Value: 0},
		{UnixTime: 300, Value: 10},
	}
	_, err := Summarize(series)
	require.ErrorIs(t, err, ErrZeroBasePrice)
}

func TestSummarize_BasicScenario(t *testing.T) {
	series := model.PriceSeries{
		{UnixTime: 0, Value: 100},
		{UnixTime: 300, Value: 110},
	}
	s, err := Summarize(series)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Points)
	assert.Equal(t, 100.0, s.First)
	assert.Equal(t, 110.0, s.Last)
	assert.Equal(t, 100.0, s.Min)
	assert.Equal(t, 110.0, s.Max)
	assert.Equal(t, 105.0, s.Average)
	assert.Equal(t, 10.0, s.AbsoluteChange)
	assert.InDelta(t, 10.0, s.PercentChange, 1e-9)
	assert.InDelta(t, 9.5238, s.VolatilityRatio, 1e-4)
	assert.Equal(t, model.TrendStronglyBullish, s.Trend)
	assert.Equal(t, model.VolatilityModerate, s.Volatility)
}

func TestSummarize_Idempotent(t *testing.T) {
	series := model.PriceSeries{
		{UnixTime: 10, Value: 42.5},
		{UnixTime: 20, Value: 40.1},
		{UnixTime: 30, Value: 44.9},
	}
	a, err := Summarize(series)
	require.NoError(t, err)
	b, err := Summarize(series)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSummarize_FirstLastByPosition(t *testing.T) {
	// Points are taken in delivery order even if timestamps were unsorted.
	series := model.PriceSeries{
		{UnixTime: 300, Value: 50},
		{UnixTime: 0, Value: 100},
	}
	s, err := Summarize(series)
	require.NoError(t, err)
	assert.Equal(t, 50.0, s.First)
	assert.Equal(t, 100.0, s.Last)
	assert.InDelta(t, 100.0, s.PercentChange, 1e-9)
}

func TestClassifyTrend_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want model.TrendLabel
	}{
		{12.0, model.TrendStronglyBullish},
		{5.1, model.TrendStronglyBullish},
		{5.0, model.TrendSlightlyBullish},
		{2.0, model.TrendSlightlyBullish},
		{0.1, model.TrendSlightlyBullish},
		{0.0, model.TrendSlightlyBearish},
		{-2.0, model.TrendSlightlyBearish},
		{-4.9, model.TrendSlightlyBearish},
		{-5.0, model.TrendStronglyBearish},
		{-20.0, model.TrendStronglyBearish},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, classifyTrend(tt.pct), "pct=%.1f", tt.pct)
	}
}

func TestClassifyVolatility_Boundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  model.VolatilityLabel
	}{
		{25.0, model.VolatilityHigh},
		{10.1, model.VolatilityHigh},
		{10.0, model.VolatilityModerate},
		{5.1, model.VolatilityModerate},
		{5.0, model.VolatilityLow},
		{0.0, model.VolatilityLow},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, classifyVolatility(tt.ratio), "ratio=%.1f", tt.ratio)
	}
}

func TestSummarize_FlatSeries(t *testing.T) {
	series := model.PriceSeries{
		{UnixTime: 0, Value: 100},
		{UnixTime: 300, Value: 100},
	}
	s, err := Summarize(series)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.PercentChange)
	assert.Equal(t, model.TrendSlightlyBearish, s.Trend)
	assert.Equal(t, 0.0, s.VolatilityRatio)
	assert.Equal(t, model.VolatilityLow, s.Volatility)
}
