package stations

import (
	"context"
	"time"

	"charge-finder/core/reconcile"

	"go.uber.org/zap"
)

// Engine is the reconciliation engine as seen by the HTTP layer.
type Engine interface {
	Nearby(ctx context.Context, q reconcile.NearbyQuery) ([]reconcile.Station, error)
	Station(ctx context.Context, id string) (*reconcile.Station, error)
	Sources() (primary, enrichment string)
}

// PhotoResolver turns opaque photo references into fetchable URLs.
type PhotoResolver interface {
	PhotoURLs(refs []string) []string
}

// SearchEvent describes one successful nearby search.
type SearchEvent struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Limit        int
	SortByRating bool
	Results      int
	RayID        string
	At           time.Time
}

// SearchRecorder persists search events. Implementations must not fail the
// search they record.
type SearchRecorder interface {
	RecordSearch(ctx context.Context, ev SearchEvent)
}

// StationView is a station as served over HTTP, with resolved photo URLs.
type StationView struct {
	reconcile.Station
	Photos []string `json:"photos"`
}

// Sources names the providers behind a response.
type Sources struct {
	Primary    string `json:"primary"`
	Enrichment string `json:"enrichment,omitempty"`
}

// Meta describes a nearby result.
type Meta struct {
	Total     int     `json:"total"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    int     `json:"radius"`
	Sources   Sources `json:"sources"`
}

// NearbyResult is the body of a nearby search.
type NearbyResult struct {
	Data []StationView `json:"data"`
	Meta Meta          `json:"meta"`
}

// Service adapts the engine to HTTP and CLI callers.
type Service struct {
	engine   Engine
	photos   PhotoResolver
	recorder SearchRecorder
	logger   *zap.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithRecorder records every successful nearby search.
func WithRecorder(r SearchRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService creates a station service. photos may be nil, in which case
// Photos is always empty.
func NewService(engine Engine, photos PhotoResolver, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{engine: engine, photos: photos, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Nearby runs a nearby search and wraps it with response metadata. rayID
// is only used for the history record.
func (s *Service) Nearby(ctx context.Context, q reconcile.NearbyQuery, rayID string) (*NearbyResult, error) {
	stations, err := s.engine.Nearby(ctx, q)
	if err != nil {
		return nil, err
	}

	primary, enrichment := s.engine.Sources()
	res := &NearbyResult{
		Data: make([]StationView, 0, len(stations)),
		Meta: Meta{
			Total:     len(stations),
			Latitude:  q.Latitude,
			Longitude: q.Longitude,
			Radius:    q.RadiusMeters,
			Sources:   Sources{Primary: primary, Enrichment: enrichment},
		},
	}
	for _, st := range stations {
		res.Data = append(res.Data, s.view(st))
	}

	if s.recorder != nil {
		s.recorder.RecordSearch(ctx, SearchEvent{
			Latitude:     q.Latitude,
			Longitude:    q.Longitude,
			RadiusMeters: q.RadiusMeters,
			Limit:        q.Limit,
			SortByRating: q.SortByRating,
			Results:      len(stations),
			RayID:        rayID,
			At:           time.Now().UTC(),
		})
	}
	return res, nil
}

// Station returns one station by id.
func (s *Service) Station(ctx context.Context, id string) (*StationView, error) {
	st, err := s.engine.Station(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(*st)
	return &v, nil
}

func (s *Service) view(st reconcile.Station) StationView {
	photos := []string{}
	if s.photos != nil {
		photos = s.photos.PhotoURLs(st.PhotoRefs)
	}
	return StationView{Station: st, Photos: photos}
}
