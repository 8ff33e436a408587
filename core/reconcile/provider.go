package reconcile

import "context"

// Provider is a source of station records near a point.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// FetchNearby returns up to maxResults records within radiusMeters.
	// Any transport or decoding failure must satisfy errors.Is(err, ErrProviderUnavailable).
	FetchNearby(ctx context.Context, lat, lon float64, radiusMeters, maxResults int) ([]RawRecord, error)
}

// Registry is the authoritative provider. It owns station identity.
type Registry interface {
	Provider
	// IDPrefix is prepended to native ids to form canonical station ids.
	IDPrefix() string
	// FetchByID returns nil without error when the id does not exist.
	FetchByID(ctx context.Context, nativeID string) (*RawRecord, error)
}

// BusinessLocator is optionally implemented by the directory provider to
// supply photos from a non-charging business at the same location.
type BusinessLocator interface {
	FetchNearbyBusinesses(ctx context.Context, lat, lon float64, radiusMeters int) ([]RawRecord, error)
	FetchDetails(ctx context.Context, id string) (*RawRecord, error)
}
