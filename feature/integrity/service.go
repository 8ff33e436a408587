package integrity

import (
	"context"

	"charge-finder/core/storage"
	"charge-finder/feature/history"
	"charge-finder/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Default probe point for provider checks (Berlin, dense coverage in both
// providers).
const (
	DefaultProbeLatitude  = 52.520008
	DefaultProbeLongitude = 13.404954
)

// Report combines every check. Sections that could not run carry an error.
type Report struct {
	Storage   any                     `json:"storage"`
	Database  any                     `json:"database"`
	Providers []checks.ProviderStatus `json:"providers"`
}

// Service runs deployment checks.
type Service struct {
	client storage.Client
	cfg    storage.Config
	db     *gorm.DB
	probes []checks.Probe
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil when
// the corresponding backend is not configured.
func NewService(client storage.Client, cfg storage.Config, db *gorm.DB, probes []checks.Probe, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, cfg: cfg, db: db, probes: probes, logger: logger}
}

// CheckStructure reports missing storage folders.
func (s *Service) CheckStructure(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, errNotConfigured("storage")
	}
	return checks.CheckStructure(ctx, s.client, s.cfg.Bucket)
}

// FixStructure creates the bucket and missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return errNotConfigured("storage")
	}
	return checks.FixStructure(ctx, s.client, s.cfg.Bucket, s.cfg.Region, s.logger, missing)
}

// CheckDatabase compares the history table with its model.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, errNotConfigured("database")
	}
	return checks.CheckSchema(s.db, &history.SearchRecord{})
}

// CheckProviders probes every provider around a point.
func (s *Service) CheckProviders(ctx context.Context, lat, lon float64) []checks.ProviderStatus {
	return checks.CheckProviders(ctx, lat, lon, s.probes...)
}

// RunAll runs every check.
func (s *Service) RunAll(ctx context.Context) Report {
	var r Report

	if rep, err := s.CheckStructure(ctx); err != nil {
		r.Storage = map[string]any{"status": "error", "error": err.Error()}
	} else {
		r.Storage = rep
	}

	if rep, err := s.CheckDatabase(); err != nil {
		r.Database = map[string]any{"status": "error", "error": err.Error()}
	} else {
		r.Database = rep
	}

	r.Providers = s.CheckProviders(ctx, DefaultProbeLatitude, DefaultProbeLongitude)
	return r
}

type notConfiguredError string

func (e notConfiguredError) Error() string {
	return string(e) + " is not configured"
}

func errNotConfigured(backend string) error {
	return notConfiguredError(backend)
}
