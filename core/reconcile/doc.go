// Package reconcile merges charging-station records from two independent
// providers into one canonical station per physical location.
//
// The registry is authoritative for identity, address and static connector
// details. The directory contributes ratings, opening hours, photos,
// amenity tags and live connector availability. Neither provider shares an
// identifier with the other, so records are paired by planar proximity.
//
// # Architecture
//
//  1. Provider: the capability interface both clients implement. Clients
//     decode their own wire shapes into RawRecord at the boundary.
//
// 2. Normalize: converts one registry record into a Station.
//
//  3. MatchStation / MatchRecord: nearest-neighbour lookup under a strict
//     distance threshold. Unmatched directory records are discarded.
//
//  4. Enricher: applies a matched directory record to a Builder. Each
//     sub-step (photos, amenities, connectors) fails independently.
//
//  5. ReconcileConnectors and CombineRatings: pure merge functions that are
//     idempotent over repeated calls.
//
//  6. Engine: fetches both providers concurrently, then matches and enriches
//     sequentially. A registry failure is fatal. A directory failure is
//     logged and the stations are returned unenriched.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(registryClient, directoryClient, logger, reconcile.DefaultOptions())
//
//	// List mode
//	stations, err := engine.Nearby(ctx, reconcile.NearbyQuery{Latitude: 52.52, Longitude: 13.405, RadiusMeters: 5000, Limit: 20})
//
//	// Detail mode
//	station, err := engine.Station(ctx, "ocm_12345")
//	if errors.Is(err, reconcile.ErrNotFound) { ... }
//
// The engine never persists stations. Photo references are opaque; turning
// them into URLs is left to the HTTP layer.
package reconcile
