package reconcile

import "strings"

var amenityTable = map[string]string{
	"parking":               "parking",
	"restaurant":            "restaurant",
	"cafe":                  "cafe",
	"food":                  "food",
	"meal_takeaway":         "food",
	"bakery":                "food",
	"shopping_mall":         "shopping",
	"supermarket":           "shopping",
	"store":                 "shopping",
	"convenience_store":     "convenience_store",
	"gas_station":           "gas_station",
	"atm":                   "atm",
	"bank":                  "atm",
	"rest_stop":             "restroom",
	"lodging":               "restroom",
	"hotel":                 "restroom",
	"pharmacy":              "pharmacy",
	"hospital":              "hospital",
	"doctor":                "hospital",
	"gym":                   "gym",
	"spa":                   "spa",
	"movie_theater":         "entertainment",
	"wheelchair_accessible": "wheelchair_accessible",
}

// MapAmenities translates directory place types into amenity tags.
// Unknown types are dropped. Output keeps first-seen order without duplicates.
func MapAmenities(types []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(types))
	for _, t := range types {
		tag, ok := amenityTable[strings.ToLower(strings.TrimSpace(t))]
		if !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// mergeTags appends tags not already present in existing.
func mergeTags(existing, tags []string) []string {
	out := append([]string{}, existing...)
	seen := make(map[string]struct{}, len(out))
	for _, t := range out {
		seen[t] = struct{}{}
	}
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
