package analyzer

import (
	"errors"
	"fmt"
	"math"

	"TokenPulse/internal/model"
)

var (
	// ErrEmptySeries is returned when there are no points to summarize.
	ErrEmptySeries = errors.New("analyzer: empty price series")

	// ErrZeroBasePrice is returned when the first point has value zero, which
	// would make the percent change undefined.
	ErrZeroBasePrice = errors.New("analyzer: first price is zero")
)

// Summarize computes the statistical digest of a price series. First and last
// are taken by position: the upstream service delivers points in chronological
// order and the series is never re-sorted. Summarize is pure; calling it twice
// on the same series yields an identical Summary.
func Summarize(series model.PriceSeries) (*model.Summary, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	first := series[0]
	last := series[len(series)-1]
	if first.Value == 0 {
		return nil, fmt.Errorf("%w at %d", ErrZeroBasePrice, first.UnixTime)
	}

	min := math.Inf(1)
	max := math.Inf(-1)
	sum := 0.0
	for _, p := range series {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
		sum += p.Value
	}
	average := sum / float64(len(series))

	absChange := last.Value - first.Value
	pctChange := absChange / first.Value * 100
	volatility := (max - min) / average * 100

	return &model.Summary{
		Points:          len(series),
		FirstTime:       first.Time(),
		LastTime:        last.Time(),
		First:           first.Value,
		Last:            last.Value,
		Min:             min,
		Max:             max,
		Average:         average,
		AbsoluteChange:  absChange,
		PercentChange:   pctChange,
		VolatilityRatio: volatility,
		Trend:           classifyTrend(pctChange),
		Volatility:      classifyVolatility(volatility),
	}, nil
}
