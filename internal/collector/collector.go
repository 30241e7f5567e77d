package collector

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"TokenPulse/internal/model"
)

// ErrInvalidArgument is returned for bad inputs before any network call.
var ErrInvalidArgument = errors.New("collector: invalid argument")

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series model.PriceSeries
	Err    error

	// LastWindow records the window of the most recent call.
	LastWindow model.TimeWindow
	Calls      int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) HistoryPrice(_ string, _ model.AddressKind, _ model.Interval, window model.TimeWindow) (model.PriceSeries, error) {
	m.Calls++
	m.LastWindow = window
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return generateMockSeries(100, window), nil
}

func generateMockSeries(basePrice float64, window model.TimeWindow) model.PriceSeries {
	const step = 300 // 5-minute buckets
	var series model.PriceSeries
	i := 0
	for ts := window.From; ts <= window.To; ts += step {
		series = append(series, model.PricePoint{
			UnixTime: ts,
			Value:    basePrice * (1 + float64(i%20-10)*0.001),
		})
		i++
	}
	return series
}

// Collector validates inputs, computes the absolute time window and retrieves
// one price series per call. It holds no state between calls and never
// retries; rate-limit handling is left to the caller.
type Collector struct {
	Fetcher Fetcher
	// Now is the clock used to anchor time windows. Defaults to time.Now.
	Now func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, Now: time.Now}
}

// Collect fetches the historical price series for one token address.
// An empty upstream item list yields an empty series, not an error.
func (c *Collector) Collect(address string, interval model.Interval, daysBack int, kind model.AddressKind) (model.PriceSeries, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: token address is required", ErrInvalidArgument)
	}
	if daysBack < 1 {
		return nil, fmt.Errorf("%w: days_back must be >= 1, got %d", ErrInvalidArgument, daysBack)
	}
	if !interval.Valid() {
		return nil, fmt.Errorf("%w: unsupported interval %q", ErrInvalidArgument, interval)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unsupported address kind %q", ErrInvalidArgument, kind)
	}

	window := model.NewTimeWindow(c.Now(), daysBack)
	log.Debug().
		Str("address", address).
		Str("interval", string(interval)).
		Int64("time_from", window.From).
		Int64("time_to", window.To).
		Str("source", c.Fetcher.Name()).
		Msg("fetching price history")

	series, err := c.Fetcher.HistoryPrice(address, kind, interval, window)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	if len(series) == 0 {
		log.Warn().Str("address", address).Msg("upstream returned no data points")
	}
	return series, nil
}
