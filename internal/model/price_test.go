package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, days := range []int{1, 7, 30} {
		w := NewTimeWindow(now, days)
		assert.Equal(t, now.Unix(), w.To)
		assert.Equal(t, int64(days)*86400, w.To-w.From)
		assert.Less(t, w.From, w.To)
	}
}

func TestIntervalValid(t *testing.T) {
	for _, i := range []Interval{Interval1m, Interval5m, Interval15m, Interval30m, Interval1h, Interval1d} {
		assert.True(t, i.Valid(), string(i))
	}
	for _, i := range []Interval{"", "2h", "1w", "daily"} {
		assert.False(t, i.Valid(), string(i))
	}
}

func TestAddressKindValid(t *testing.T) {
	assert.True(t, AddressToken.Valid())
	assert.True(t, AddressPair.Valid())
	assert.False(t, AddressKind("wallet").Valid())
}
