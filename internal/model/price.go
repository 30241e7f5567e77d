package model

import "time"

// PricePoint is a single time-bucketed price sample from the upstream feed.
type PricePoint struct {
	UnixTime int64   `json:"unixTime"`
	Value    float64 `json:"value"`
}

// Time returns the sample timestamp as a time.Time.
func (p PricePoint) Time() time.Time {
	return time.Unix(p.UnixTime, 0)
}

// PriceSeries holds price points in the order the upstream service delivered
// them (ascending by time). The series is never re-sorted locally.
type PriceSeries []PricePoint

// TimeWindow is an absolute [From, To] range in epoch seconds.
type TimeWindow struct {
	From int64
	To   int64
}

// NewTimeWindow computes the window ending at now and spanning daysBack days.
func NewTimeWindow(now time.Time, daysBack int) TimeWindow {
	end := now.Unix()
	return TimeWindow{
		From: end - int64(daysBack)*86400,
		To:   end,
	}
}

// Interval is the upstream time-bucket granularity for historical prices.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval1d  Interval = "1d"
)

// Valid reports whether the interval is one the upstream service accepts.
func (i Interval) Valid() bool {
	switch i {
	case Interval1m, Interval5m, Interval15m, Interval30m, Interval1h, Interval1d:
		return true
	}
	return false
}

// AddressKind tells the upstream service how to interpret an address.
type AddressKind string

const (
	AddressToken AddressKind = "token"
	AddressPair  AddressKind = "pair"
)

// Valid reports whether the address kind is supported upstream.
func (k AddressKind) Valid() bool {
	return k == AddressToken || k == AddressPair
}
