// Package stations exposes the reconciliation engine over HTTP.
//
// # HTTP Endpoints
//
//   - GET /stations/nearby : Reconciled stations around a point.
//     Query: latitude, longitude (required), radius (100-50000, default 5000),
//     limit (1-100, default 20), sort (rating | distance).
//   - GET /stations/:id : One station by "<prefix>_<digits>" id.
//
// Photo references produced by the engine are resolved to URLs here, so the
// engine never handles provider credentials. Successful nearby searches are
// passed to an optional SearchRecorder.
//
// Errors are returned as {"error": "..."}: 400 for invalid input, 404 for
// unknown stations, 502 when the registry is unreachable.
package stations
