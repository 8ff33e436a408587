package directory

import "encoding/json"

// searchTextRequest is the v1 text search body.
type searchTextRequest struct {
	TextQuery      string       `json:"textQuery"`
	PageSize       int          `json:"pageSize,omitempty"`
	LanguageCode   string       `json:"languageCode,omitempty"`
	LocationBias   locationBias `json:"locationBias"`
	RankPreference string       `json:"rankPreference"`
}

type locationBias struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchTextResponse is the v1 text search response. Places stay raw so
// each one is decoded on its own.
type SearchTextResponse struct {
	Places []json.RawMessage `json:"places"`
}

// Place is a v1 place.
type Place struct {
	ID                       string           `json:"id"`
	DisplayName              *LocalizedText   `json:"displayName"`
	FormattedAddress         string           `json:"formattedAddress"`
	Location                 *latLng          `json:"location"`
	Rating                   *float64         `json:"rating"`
	UserRatingCount          *int             `json:"userRatingCount"`
	Types                    []string         `json:"types"`
	PrimaryType              string           `json:"primaryType"`
	BusinessStatus           string           `json:"businessStatus"`
	EVChargeOptions          *EVChargeOptions `json:"evChargeOptions"`
	CurrentOpeningHours      *OpeningHours    `json:"currentOpeningHours"`
	Photos                   []Photo          `json:"photos"`
	InternationalPhoneNumber string           `json:"internationalPhoneNumber"`
	WebsiteURI               string           `json:"websiteUri"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
}

type EVChargeOptions struct {
	ConnectorCount       int                    `json:"connectorCount"`
	ConnectorAggregation []ConnectorAggregation `json:"connectorAggregation"`
}

type ConnectorAggregation struct {
	Type                       string   `json:"type"`
	MaxChargeRateKW            *float64 `json:"maxChargeRateKw"`
	Count                      int      `json:"count"`
	AvailableCount             *int     `json:"availableCount"`
	OutOfServiceCount          *int     `json:"outOfServiceCount"`
	AvailabilityLastUpdateTime string   `json:"availabilityLastUpdateTime"`
}

type OpeningHours struct {
	OpenNow             *bool    `json:"openNow"`
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
}

type Photo struct {
	Name     string `json:"name"`
	WidthPx  int    `json:"widthPx"`
	HeightPx int    `json:"heightPx"`
}

// legacyNearbyResponse is the legacy nearby search response.
type legacyNearbyResponse struct {
	Results      []legacyPlace `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

// legacyDetailsResponse is the legacy details response.
type legacyDetailsResponse struct {
	Result       *legacyPlace `json:"result"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
}

type legacyPlace struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity"`
	Geometry         *legacyGeom   `json:"geometry"`
	Rating           *float64      `json:"rating"`
	UserRatingsTotal *int          `json:"user_ratings_total"`
	Types            []string      `json:"types"`
	OpeningHours     *legacyHours  `json:"opening_hours"`
	Photos           []legacyPhoto `json:"photos"`
}

type legacyGeom struct {
	Location *legacyLatLng `json:"location"`
}

type legacyLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type legacyHours struct {
	WeekdayText []string `json:"weekday_text"`
}

type legacyPhoto struct {
	PhotoReference string `json:"photo_reference"`
}
