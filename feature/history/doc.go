// Package history records successful nearby searches in the optional
// database and lists them over HTTP.
//
// Recording is best-effort: Recorder logs insert failures and never affects
// the search response. Without a database connection the feature is
// disabled and no recorder is installed.
//
// # HTTP Endpoints
//
//   - GET /history : Most recent searches (?limit=1..100, default 20).
package history
