package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeFromPoint_ContainsCenter(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		radiusKm float64
	}{
		{"berlin", 52.52, 13.40, 0.5},
		{"equator", 0, 0, 10},
		{"southern", -33.86, 151.20, 2},
		{"high latitude", 78.22, 15.63, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := RangeFromPoint(tt.lat, tt.lon, tt.radiusKm)
			assert.Less(t, b.MinLat, tt.lat)
			assert.Greater(t, b.MaxLat, tt.lat)
			assert.Less(t, b.MinLon, tt.lon)
			assert.Greater(t, b.MaxLon, tt.lon)
			assert.True(t, b.Contains(tt.lat, tt.lon))
		})
	}
}

func TestRangeFromPoint_LargerRadiusWidensBox(t *testing.T) {
	small := RangeFromPoint(52.52, 13.40, 0.5)
	large := RangeFromPoint(52.52, 13.40, 5)

	assert.Less(t, large.MinLat, small.MinLat)
	assert.Greater(t, large.MaxLat, small.MaxLat)
	assert.Less(t, large.MinLon, small.MinLon)
	assert.Greater(t, large.MaxLon, small.MaxLon)
}

func TestRangeFromPoint_NoWideningAtEquator(t *testing.T) {
	radiusKm := 10.0
	b := RangeFromPoint(0, 0, radiusKm)

	radDeg := radiusKm / EarthRadiusKm * 180 / math.Pi
	assert.InDelta(t, radDeg, b.MaxLon, 1e-9)
	assert.InDelta(t, -radDeg, b.MinLon, 1e-9)
	assert.InDelta(t, radDeg, b.MaxLat, 1e-9)
}

func TestRangeFromPoint_WideningGrowsWithLatitude(t *testing.T) {
	equator := RangeFromPoint(0, 0, 1)
	north := RangeFromPoint(60, 0, 1)

	spanEquator := equator.MaxLon - equator.MinLon
	spanNorth := north.MaxLon - north.MinLon
	assert.Greater(t, spanNorth, spanEquator)
}

func TestRangeFromPoint_PolesDoNotProduceNaN(t *testing.T) {
	for _, lat := range []float64{90, -90, 89.9999} {
		b := RangeFromPoint(lat, 0, 1)
		require.False(t, math.IsNaN(b.MinLon), "lat=%v", lat)
		require.False(t, math.IsNaN(b.MaxLon), "lat=%v", lat)
		// degenerate case falls back to the full longitude range
		assert.Equal(t, -180.0, b.MinLon)
		assert.Equal(t, 180.0, b.MaxLon)
	}
}

func TestBoundingBox_Contains(t *testing.T) {
	b := BoundingBox{MinLat: 50, MaxLat: 54, MinLon: 12, MaxLon: 14}

	assert.True(t, b.Contains(52, 13))
	assert.False(t, b.Contains(10, 13), "latitude outside")
	assert.False(t, b.Contains(52, 20), "longitude outside")
	// corner inside the box but outside any inscribed disc still matches:
	// the filter is rectangular on purpose
	assert.True(t, b.Contains(50, 12))
}
