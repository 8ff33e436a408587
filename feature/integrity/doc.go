// Package integrity provides deployment health checks.
//
// # Checks Provided
//
//   - Storage: the snapshot bucket and its "snapshots/" folder exist (fixable).
//   - Database: the search history table matches its GORM model.
//   - Providers: each station provider answers a one-result nearby search.
//
// Storage and database checks report "not configured" when the backend is
// absent. Provider probes never fail the request; each result carries its
// own status and latency.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Storage check (supports ?fix=true).
//   - GET /integrity/database : Schema check.
//   - GET /integrity/providers : Provider probes (?latitude&longitude).
package integrity
