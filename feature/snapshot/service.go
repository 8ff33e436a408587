package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"time"

	"charge-finder/core/reconcile"
	"charge-finder/core/storage"
	"charge-finder/feature/stations"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prefix is the object key prefix of every snapshot.
const Prefix = "snapshots/"

const timeLayout = "20060102T150405Z"

var (
	// ErrInvalidName is returned for names that are not snapshot file names.
	ErrInvalidName = errors.New("invalid snapshot name")
	// ErrNotFound is returned when a snapshot does not exist.
	ErrNotFound = errors.New("snapshot not found")

	namePattern = regexp.MustCompile(`^\d{8}T\d{6}Z-[0-9a-f-]{36}\.json$`)
)

// Finder runs a nearby search.
type Finder interface {
	Nearby(ctx context.Context, q reconcile.NearbyQuery, rayID string) (*stations.NearbyResult, error)
}

// Document is the stored snapshot body.
type Document struct {
	CreatedAt time.Time              `json:"createdAt"`
	Query     reconcile.NearbyQuery  `json:"query"`
	Result    *stations.NearbyResult `json:"result"`
}

// Info describes a stored snapshot.
type Info struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	Stations     *int      `json:"stations,omitempty"`
}

// Service writes and reads station snapshots in object storage.
type Service struct {
	client storage.Client
	bucket string
	region string
	finder Finder
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a snapshot service.
func NewService(client storage.Client, cfg storage.Config, finder Finder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		finder: finder,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Export runs a nearby search and stores the result.
func (s *Service) Export(ctx context.Context, q reconcile.NearbyQuery, rayID string) (*Info, error) {
	res, err := s.finder.Nearby(ctx, q, rayID)
	if err != nil {
		return nil, err
	}

	created := s.now()
	body, err := json.MarshalIndent(Document{CreatedAt: created, Query: q, Result: res}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%s.json", created.Format(timeLayout), uuid.New().String())
	_, err = s.client.PutObject(ctx, s.bucket, Prefix+name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot %s: %w", name, err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("name", name),
		zap.Int("stations", len(res.Data)),
		zap.Int("bytes", len(body)))

	count := len(res.Data)
	return &Info{Name: name, Size: int64(len(body)), LastModified: created, Stations: &count}, nil
}

// List returns stored snapshots, oldest first, with the station count of
// each. A snapshot whose body cannot be read is listed without a count.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	infos, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range infos {
		count, err := s.stationCount(ctx, infos[i].Name)
		if err != nil {
			s.logger.Warn("Snapshot station count unavailable",
				zap.String("name", infos[i].Name),
				zap.Error(err))
			continue
		}
		infos[i].Stations = &count
	}
	return infos, nil
}

func (s *Service) list(ctx context.Context) ([]Info, error) {
	objs, err := storage.ListPrefix(ctx, s.client, s.bucket, Prefix)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(objs))
	for _, obj := range objs {
		name := path.Base(obj.Key)
		if !namePattern.MatchString(name) {
			continue
		}
		out = append(out, Info{Name: name, Size: obj.Size, LastModified: obj.LastModified})
	}
	return out, nil
}

// Get returns the raw JSON body of a snapshot.
func (s *Service) Get(ctx context.Context, name string) ([]byte, error) {
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, Prefix+name, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapError(name, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.mapError(name, err)
	}
	return body, nil
}

// Prune deletes snapshots last modified before the retention window and
// returns how many were removed.
func (s *Service) Prune(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", retention)
	}
	infos, err := s.list(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := s.now().Add(-retention)
	var keys []string
	for _, info := range infos {
		if info.LastModified.Before(cutoff) {
			keys = append(keys, Prefix+info.Name)
		}
	}

	removed, err := storage.RemoveKeys(ctx, s.client, s.bucket, keys)
	if removed > 0 {
		s.logger.Info("Snapshots pruned",
			zap.Int("removed", removed),
			zap.Time("cutoff", cutoff))
	}
	return removed, err
}

// stationCount reads the result total of a stored document.
func (s *Service) stationCount(ctx context.Context, name string) (int, error) {
	body, err := s.Get(ctx, name)
	if err != nil {
		return 0, err
	}
	var doc struct {
		Result *struct {
			Meta stations.Meta `json:"meta"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	if doc.Result == nil {
		return 0, fmt.Errorf("snapshot %s has no result", name)
	}
	return doc.Result.Meta.Total, nil
}

func (s *Service) mapError(name string, err error) error {
	if code := minio.ToErrorResponse(err).Code; code == "NoSuchKey" || code == "NoSuchBucket" {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("read snapshot %s: %w", name, err)
}
