// Package storage wraps the MinIO client for the snapshot archive.
//
// Client mirrors the subset of minio.Client the service calls, so tests can
// swap in mocks.Client. The helpers build on it:
//
//   - EnsureBucket creates the snapshot bucket on first use.
//   - ListPrefix collects a listing and surfaces per-entry errors.
//   - RemoveKeys batch-deletes expired snapshots.
//
// Works against AWS S3 and self-hosted MinIO alike.
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
