package collector

import "TokenPulse/internal/model"

// Fetcher defines the transport used to retrieve historical price data.
// The birdeye client is the canonical implementation; tests plug in a mock.
type Fetcher interface {
	HistoryPrice(address string, kind model.AddressKind, interval model.Interval, window model.TimeWindow) (model.PriceSeries, error)
	Name() string
}
