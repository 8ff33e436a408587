package utils

import "math"

// MetersPerDegree is the planar approximation used to convert matching
// thresholds between meters and decimal degrees.
const MetersPerDegree = 111_000.0

// MetersToDegrees converts a distance in meters to planar degrees.
func MetersToDegrees(meters float64) float64 {
	return meters / MetersPerDegree
}

// PlanarDistance returns the Euclidean distance between two points in
// degrees. No great-circle correction is applied.
func PlanarDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// ValidCoordinates reports whether lat/lon are finite and within WGS84 range.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
