package reconcile

import "time"

// PlaceholderName is used when the registry record has no usable title.
const PlaceholderName = "Charging Station"

// Provenance records which provider produced a connector record.
type Provenance string

const (
	ProvenanceRegistry  Provenance = "registry"
	ProvenanceDirectory Provenance = "directory"
)

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address is the postal address reported by the registry.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Operator describes the network operating a station.
type Operator struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// UsageTerms describes access rules and pricing.
type UsageTerms struct {
	Title              string `json:"title"`
	RequiresMembership bool   `json:"requiresMembership"`
	PayAtLocation      bool   `json:"payAtLocation"`
	RequiresAccessKey  bool   `json:"requiresAccessKey"`
	Cost               string `json:"cost,omitempty"`
}

// RatingSource is one provider's rating with its review count.
type RatingSource struct {
	Value       float64 `json:"value"`
	ReviewCount int     `json:"reviewCount"`
}

// Rating groups per-source ratings and their weighted combination.
type Rating struct {
	Registry     *RatingSource `json:"registry,omitempty"`
	Directory    *RatingSource `json:"directory,omitempty"`
	Combined     *float64      `json:"combined"`
	TotalReviews int           `json:"totalReviews"`
}

// ConnectorRecord is one connector entry of a canonical station.
type ConnectorRecord struct {
	Type                  string     `json:"type"`
	Title                 string     `json:"title,omitempty"`
	FormalName            string     `json:"formalName,omitempty"`
	Level                 string     `json:"level,omitempty"`
	CurrentType           string     `json:"currentType,omitempty"`
	Status                string     `json:"status,omitempty"`
	IsOperational         *bool      `json:"isOperational,omitempty"`
	PowerKW               *float64   `json:"powerKw"`
	MaxChargeRateKW       *float64   `json:"maxChargeRateKw,omitempty"`
	Quantity              int        `json:"quantity"`
	AvailableCount        *int       `json:"availableCount,omitempty"`
	OutOfServiceCount     *int       `json:"outOfServiceCount,omitempty"`
	AvailabilityUpdatedAt *time.Time `json:"availabilityUpdatedAt,omitempty"`
	Provenance            Provenance `json:"provenance"`
}

// Station is the canonical record for one physical charging location.
type Station struct {
	SourceID        string            `json:"sourceId"`
	RegistryUUID    string            `json:"registryUuid,omitempty"`
	DirectoryID     string            `json:"directoryId,omitempty"`
	Name            string            `json:"name"`
	Address         *Address          `json:"address,omitempty"`
	Coordinates     *Coordinates      `json:"coordinates,omitempty"`
	Operator        *Operator         `json:"operator,omitempty"`
	Usage           *UsageTerms       `json:"usage,omitempty"`
	IsOperational   bool              `json:"isOperational"`
	TotalConnectors int               `json:"totalConnectors"`
	Connectors      []ConnectorRecord `json:"connectors"`
	Rating          Rating            `json:"rating"`
	OpeningHours    []string          `json:"openingHours"`
	PhotoRefs       []string          `json:"photoRefs"`
	Amenities       []string          `json:"amenities"`
	LastSyncAt      time.Time         `json:"lastSyncAt"`
	LastVerifiedAt  time.Time         `json:"lastVerifiedAt"`
}

// RawConnection is a connector as the registry reports it.
type RawConnection struct {
	Title       string
	FormalName  string
	Level       string
	CurrentType string
	Status      string
	Operational *bool
	PowerKW     *float64
	Quantity    *int
}

// ConnectorBucket is a directory connector aggregation: a connector type
// with a count and optional live availability.
type ConnectorBucket struct {
	Type                  string
	Count                 int
	AvailableCount        *int
	OutOfServiceCount     *int
	MaxChargeRateKW       *float64
	AvailabilityUpdatedAt *time.Time
}

// RawRecord is the provider-neutral shape both clients decode into.
// Registry records fill the address, operator and connection fields;
// directory records fill rating, hours, photos, types and buckets.
type RawRecord struct {
	NativeID     string
	UUID         string
	Name         string
	Coordinates  *Coordinates
	Address      *Address
	Operator     *Operator
	Usage        *UsageTerms
	Operational  *bool
	PointCount   int
	Connections  []RawConnection
	Rating       *RatingSource
	OpeningHours []string
	PhotoRefs    []string
	PhotoCount   int
	Types        []string
	EVConnectors []ConnectorBucket
}

// NearbyQuery is a proximity search request.
type NearbyQuery struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radiusMeters"`
	Limit        int     `json:"limit"`
	SortByRating bool    `json:"sortByRating"`
}
