package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceSeries_SortsAndDeduplicates(t *testing.T) {
	rome := time.FixedZone("CET", 3600)
	points := []PricePoint{
		{Date: time.Date(2024, 3, 5, 17, 30, 0, 0, rome), Close: 12},
		{Date: time.Date(2024, 3, 4, 17, 30, 0, 0, rome), Close: 10},
		{Date: time.Date(2024, 3, 5, 9, 0, 0, 0, rome), Close: 11},
		{Date: time.Date(2024, 3, 6, 0, 30, 0, 0, rome), Close: 0},
	}

	s := NewPriceSeries("FTSEMIB.MI", points)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), s.Points[0].Date)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), s.Points[1].Date)
	// the last observation of a repeated date wins
	assert.Equal(t, 11.0, s.Points[1].Close)
	assert.Equal(t, []float64{10, 11}, s.Closes())
}

func TestDateOf_KeepsWallClockDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	got := DateOf(time.Date(2024, 1, 2, 1, 0, 0, 0, tokyo))
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestWindowReturn_Direction(t *testing.T) {
	assert.Equal(t, DirectionUp, WindowReturn{Available: true, Pct: 0.01}.Direction())
	assert.Equal(t, DirectionDown, WindowReturn{Available: true, Pct: -2}.Direction())
	assert.Equal(t, DirectionFlat, WindowReturn{Available: true}.Direction())
	assert.Equal(t, DirectionNoData, WindowReturn{}.Direction())
	assert.Equal(t, DirectionFetchError, WindowReturn{FetchFailed: true}.Direction())
}

func TestLookbackWindow_IsPrimary(t *testing.T) {
	assert.True(t, Window1W.IsPrimary())
	assert.True(t, Window1Y.IsPrimary())
	assert.False(t, Window3Y.IsPrimary())
	assert.False(t, Window5Y.IsPrimary())
	assert.Len(t, Windows, 7)
}
