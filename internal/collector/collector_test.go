package collector

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TokenPulse/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestCollect_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		interval model.Interval
		days     int
		kind     model.AddressKind
	}{
		{"empty address", "", model.Interval1h, 7, model.AddressToken},
		{"zero days", "So111", model.Interval1h, 0, model.AddressToken},
		{"negative days", "So111", model.Interval1h, -3, model.AddressToken},
		{"bad interval", "So111", "2h", 7, model.AddressToken},
		{"bad kind", "So111", model.Interval1h, 7, "wallet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockFetcher{}
			col := NewCollector(mock)
			col.Now = fixedNow

			_, err := col.Collect(tt.address, tt.interval, tt.days, tt.kind)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Zero(t, mock.Calls, "invalid input must not reach the network")
		})
	}
}

func TestCollect_TimeWindow(t *testing.T) {
	for _, days := range []int{1, 7, 30, 365} {
		mock := &MockFetcher{Series: model.PriceSeries{{UnixTime: 1, Value: 1}}}
		col := NewCollector(mock)
		col.Now = fixedNow

		_, err := col.Collect("So111", model.Interval1h, days, model.AddressToken)
		require.NoError(t, err)

		w := mock.LastWindow
		assert.Equal(t, fixedNow().Unix(), w.To)
		assert.Equal(t, int64(days)*86400, w.To-w.From)
	}
}

func TestCollect_EmptySeriesIsNotAnError(t *testing.T) {
	mock := &MockFetcher{Series: model.PriceSeries{}}
	col := NewCollector(mock)
	col.Now = fixedNow

	series, err := col.Collect("So111", model.Interval5m, 1, model.AddressToken)
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestCollect_FetchErrorPropagates(t *testing.T) {
	upstream := errors.New("boom")
	mock := &MockFetcher{Err: upstream}
	col := NewCollector(mock)
	col.Now = fixedNow

	_, err := col.Collect("So111", model.Interval1h, 7, model.AddressToken)
	require.ErrorIs(t, err, upstream)
	assert.Equal(t, 1, mock.Calls)
}

func TestCollect_PairAddressKind(t *testing.T) {
	mock := &MockFetcher{}
	col := NewCollector(mock)
	col.Now = fixedNow

	series, err := col.Collect("pair111", model.Interval5m, 1, model.AddressPair)
	require.NoError(t, err)
	assert.NotEmpty(t, series)
}
