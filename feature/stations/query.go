package stations

import (
	"fmt"
	"strconv"
	"strings"

	"charge-finder/core/reconcile"
	"charge-finder/core/utils"
)

// Query bounds for nearby searches.
const (
	DefaultRadius = 5000
	MinRadius     = 100
	MaxRadius     = 50000
	DefaultLimit  = 20
	MaxLimit      = 100
)

// ParseNearbyQuery validates raw query parameters. lookup returns the raw
// value of a parameter, or an empty string.
func ParseNearbyQuery(lookup func(string) string) (reconcile.NearbyQuery, error) {
	var q reconcile.NearbyQuery

	lat, err := requiredFloat(lookup, "latitude")
	if err != nil {
		return q, err
	}
	lon, err := requiredFloat(lookup, "longitude")
	if err != nil {
		return q, err
	}
	if !utils.ValidCoordinates(lat, lon) {
		return q, fmt.Errorf("%w: latitude must be in [-90,90] and longitude in [-180,180]", reconcile.ErrInvalidQuery)
	}

	radius, err := optionalInt(lookup, "radius", DefaultRadius, MinRadius, MaxRadius)
	if err != nil {
		return q, err
	}
	limit, err := optionalInt(lookup, "limit", DefaultLimit, 1, MaxLimit)
	if err != nil {
		return q, err
	}

	sortBy := strings.TrimSpace(lookup("sort"))
	if sortBy != "" && sortBy != "rating" && sortBy != "distance" {
		return q, fmt.Errorf("%w: sort must be rating or distance", reconcile.ErrInvalidQuery)
	}

	return reconcile.NearbyQuery{
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
		Limit:        limit,
		SortByRating: sortBy == "rating",
	}, nil
}

func requiredFloat(lookup func(string) string, name string) (float64, error) {
	raw := strings.TrimSpace(lookup(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", reconcile.ErrInvalidQuery, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", reconcile.ErrInvalidQuery, name)
	}
	return v, nil
}

func optionalInt(lookup func(string) string, name string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(lookup(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s must be an integer in [%d,%d]", reconcile.ErrInvalidQuery, name, lo, hi)
	}
	return v, nil
}
