package history

import (
	"context"
	"time"

	"charge-finder/feature/stations"

	"go.uber.org/zap"
)

// writeTimeout bounds a single history insert. The insert runs detached from
// the request context so a finished response does not cancel it.
const writeTimeout = 2 * time.Second

// Recorder stores search events. Failures are logged and swallowed.
type Recorder struct {
	repo   *Repository
	logger *zap.Logger
}

var _ stations.SearchRecorder = (*Recorder)(nil)

// NewRecorder creates a recorder.
func NewRecorder(repo *Repository, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{repo: repo, logger: logger}
}

// RecordSearch implements stations.SearchRecorder.
func (r *Recorder) RecordSearch(ctx context.Context, ev stations.SearchEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	rec := &SearchRecord{
		Latitude:     ev.Latitude,
		Longitude:    ev.Longitude,
		RadiusMeters: ev.RadiusMeters,
		ResultLimit:  ev.Limit,
		SortByRating: ev.SortByRating,
		Results:      ev.Results,
		RayID:        ev.RayID,
		CreatedAt:    ev.At,
	}
	if err := r.repo.Create(ctx, rec); err != nil {
		r.logger.Warn("Failed to record search",
			zap.String("ray_id", ev.RayID),
			zap.Error(err))
	}
}
