package reconcile

import "math"

// CombineRatings computes the review-count-weighted rating of up to two
// sources. The result is rounded half-up to two decimals. When both sources
// are present but neither has reviews, the plain mean is used.
func CombineRatings(a, b *RatingSource) (*float64, int) {
	switch {
	case a == nil && b == nil:
		return nil, 0
	case a == nil:
		v := b.Value
		return &v, b.ReviewCount
	case b == nil:
		v := a.Value
		return &v, a.ReviewCount
	}

	total := a.ReviewCount + b.ReviewCount
	var combined float64
	if total == 0 {
		combined = (a.Value + b.Value) / 2
	} else {
		combined = (a.Value*float64(a.ReviewCount) + b.Value*float64(b.ReviewCount)) / float64(total)
	}
	combined = roundHalfUp(combined, 2)
	return &combined, total
}

// Recompute refreshes the combined rating from the per-source values.
func (r *Rating) Recompute() {
	r.Combined, r.TotalReviews = CombineRatings(r.Registry, r.Directory)
}

// roundHalfUp rounds to the given number of decimals. The epsilon absorbs
// binary representation error so 4.125 rounds to 4.13.
func roundHalfUp(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5+1e-9) / p
}
