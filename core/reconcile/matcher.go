package reconcile

import "charge-finder/core/utils"

// nearestIndex returns the index of the point closest to target whose planar
// distance is strictly below threshold, or -1. Points without coordinates are
// skipped. On equal distances the earlier point wins.
func nearestIndex(points []*Coordinates, target Coordinates, threshold float64) int {
	best := -1
	bestDist := threshold
	for i, p := range points {
		if p == nil {
			continue
		}
		d := utils.PlanarDistance(p.Latitude, p.Longitude, target.Latitude, target.Longitude)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// MatchStation finds the builder nearest to rec within threshold degrees.
// It returns nil when rec has no coordinates or nothing is close enough.
func MatchStation(builders []*Builder, rec RawRecord, threshold float64) *Builder {
	if rec.Coordinates == nil {
		return nil
	}
	points := make([]*Coordinates, len(builders))
	for i, b := range builders {
		points[i] = b.station.Coordinates
	}
	if i := nearestIndex(points, *rec.Coordinates, threshold); i >= 0 {
		return builders[i]
	}
	return nil
}

// MatchRecord finds the record nearest to the station within threshold degrees.
func MatchRecord(station Station, recs []RawRecord, threshold float64) (RawRecord, bool) {
	if station.Coordinates == nil {
		return RawRecord{}, false
	}
	points := make([]*Coordinates, len(recs))
	for i := range recs {
		points[i] = recs[i].Coordinates
	}
	if i := nearestIndex(points, *station.Coordinates, threshold); i >= 0 {
		return recs[i], true
	}
	return RawRecord{}, false
}
