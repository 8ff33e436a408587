// Package snapshot archives reconciled nearby results in object storage.
//
// Snapshots are written as indented JSON under
// "snapshots/<UTC timestamp>-<uuid>.json". The bucket is created on first
// export. Stored documents are never read back by the engine.
//
// # HTTP Endpoints
//
//   - POST /snapshots : Export a nearby search (same query as /stations/nearby).
//   - GET /snapshots : List stored snapshots.
//   - GET /snapshots/:name : Return one snapshot.
//   - DELETE /snapshots?older_than=720h : Prune old snapshots.
package snapshot
