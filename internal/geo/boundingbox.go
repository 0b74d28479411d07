// Package geo derives axis-aligned bounding boxes used as spatial filters
// over a store that has no native geo index.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for angular-distance conversion.
const EarthRadiusKm = 6371.0

// BoundingBox is an axis-aligned latitude/longitude rectangle, in degrees.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// RangeFromPoint returns a bounding box guaranteed to contain every point
// within radiusKm great-circle distance of (lat, lon). The box is an
// over-approximation of the disc, not a tight fit; callers filter
// rectangularly and accept points outside the true radius.
//
// Known approximation limits: no wrap-around at the ±180° longitude seam or
// the ±90° latitude seam. Near the poles cos(lat) approaches zero and the
// longitude delta is undefined; in that case the full longitude range is
// returned instead of a NaN box.
func RangeFromPoint(lat, lon, radiusKm float64) BoundingBox {
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180
	rad := radiusKm / EarthRadiusKm

	minLat := latRad - rad
	maxLat := latRad + rad

	var minLon, maxLon float64
	sinRatio := math.Sin(rad) / math.Cos(latRad)
	if math.Abs(sinRatio) >= 1 || math.IsNaN(sinRatio) {
		// degenerate near the poles: widen to the full longitude range
		minLon = -math.Pi
		maxLon = math.Pi
	} else {
		deltaLon := math.Asin(sinRatio)
		minLon = lonRad - deltaLon
		maxLon = lonRad + deltaLon
	}

	return BoundingBox{
		MinLat: minLat * 180 / math.Pi,
		MaxLat: maxLat * 180 / math.Pi,
		MinLon: minLon * 180 / math.Pi,
		MaxLon: maxLon * 180 / math.Pi,
	}
}

// Contains reports whether the point lies inside the box, both axes checked
// independently.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}
