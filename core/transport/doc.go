// Package transport provides the HTTP client shared by the provider clients.
// It applies API-key authentication and maps failed calls to
// reconcile.ProviderError. With WithCoalescing, identical concurrent GETs
// share a single upstream round trip.
package transport
