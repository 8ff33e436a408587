package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"charge-finder/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit is used when a nearby query does not set one.
const DefaultLimit = 50

// Options tunes matching thresholds and fallbacks. Distances are in meters
// and converted to planar degrees at utils.MetersPerDegree.
type Options struct {
	ListMatchMeters      float64
	DetailMatchMeters    float64
	DetailSearchMeters   int
	DetailSearchResults  int
	BusinessSearchMeters int
	BusinessMatchMeters  float64
	PhotoCap             int
	// Now supplies freshness timestamps. Defaults to time.Now().UTC().
	Now func() time.Time
}

// DefaultOptions returns the production thresholds.
func DefaultOptions() Options {
	return Options{
		ListMatchMeters:      160,
		DetailMatchMeters:    150,
		DetailSearchMeters:   150,
		DetailSearchResults:  5,
		BusinessSearchMeters: 50,
		BusinessMatchMeters:  55.5,
		PhotoCap:             DefaultPhotoCap,
	}
}

// Engine reconciles registry and directory records into canonical stations.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	registry  Registry
	directory Provider
	enricher  *Enricher
	logger    *zap.Logger
	opts      Options
}

// NewEngine wires an engine. directory may be nil, in which case stations are
// returned unenriched.
func NewEngine(registry Registry, directory Provider, logger *zap.Logger, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &Engine{
		registry:  registry,
		directory: directory,
		enricher:  NewEnricher(opts.PhotoCap),
		logger:    logger,
		opts:      opts,
	}
}

// Sources returns the provider names used for primary data and enrichment.
func (e *Engine) Sources() (primary, enrichment string) {
	primary = e.registry.Name()
	if e.directory != nil {
		enrichment = e.directory.Name()
	}
	return primary, enrichment
}

// Nearby returns canonical stations around a point in registry order, or
// sorted by combined rating when requested, truncated to the query limit.
// A registry failure is returned to the caller. A directory failure only
// produces unenriched stations.
func (e *Engine) Nearby(ctx context.Context, q NearbyQuery) ([]Station, error) {
	if !utils.ValidCoordinates(q.Latitude, q.Longitude) {
		return nil, fmt.Errorf("%w: coordinates %f,%f out of range", ErrInvalidQuery, q.Latitude, q.Longitude)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var primary, secondary []RawRecord
	var secondaryErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := e.registry.FetchNearby(gctx, q.Latitude, q.Longitude, q.RadiusMeters, limit)
		if err != nil {
			return err
		}
		primary = recs
		return nil
	})
	if e.directory != nil {
		g.Go(func() error {
			secondary, secondaryErr = e.directory.FetchNearby(gctx, q.Latitude, q.Longitude, q.RadiusMeters, limit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch %s stations: %w", e.registry.Name(), err)
	}

	now := e.opts.Now()
	prefix := e.registry.IDPrefix()
	builders := make([]*Builder, 0, len(primary))
	for _, rec := range primary {
		builders = append(builders, NewBuilder(Normalize(rec, prefix, now)))
	}

	if secondaryErr != nil {
		e.logger.Warn("Directory fetch failed, returning unenriched stations",
			zap.String("provider", e.directory.Name()),
			zap.Error(secondaryErr))
	} else {
		e.enrichAll(builders, secondary)
	}

	stations := make([]Station, 0, len(builders))
	for _, b := range builders {
		s := b.Station()
		s.LastVerifiedAt = now
		stations = append(stations, s)
	}
	if q.SortByRating {
		sortByRating(stations)
	}
	if len(stations) > limit {
		stations = stations[:limit]
	}
	return stations, nil
}

func (e *Engine) enrichAll(builders []*Builder, recs []RawRecord) {
	threshold := utils.MetersToDegrees(e.opts.ListMatchMeters)
	discarded := 0
	for _, rec := range recs {
		b := MatchStation(builders, rec, threshold)
		if b == nil {
			discarded++
			continue
		}
		e.enrich(b, rec)
	}
	if discarded > 0 {
		e.logger.Debug("Discarded unmatched directory records",
			zap.Int("count", discarded),
			zap.Int("total", len(recs)))
	}
}

func (e *Engine) enrich(b *Builder, rec RawRecord) {
	if err := e.enricher.Enrich(b, rec); err != nil {
		e.logger.Warn("Partial enrichment failure",
			zap.String("station", b.station.SourceID),
			zap.String("directory_id", rec.NativeID),
			zap.Error(err))
	}
}

// Station returns one canonical station by id. The id is validated before
// any provider call. Directory enrichment and photo fallbacks are
// best-effort.
func (e *Engine) Station(ctx context.Context, id string) (*Station, error) {
	native, err := ParseStationID(id, e.registry.IDPrefix())
	if err != nil {
		return nil, err
	}

	rec, err := e.registry.FetchByID(ctx, native)
	if err != nil {
		return nil, fmt.Errorf("fetch station %s: %w", id, err)
	}
	if rec == nil {
		return nil, &NotFoundError{ID: id}
	}

	now := e.opts.Now()
	b := NewBuilder(Normalize(*rec, e.registry.IDPrefix(), now))
	coords := b.station.Coordinates

	if e.directory != nil && coords != nil {
		recs, err := e.directory.FetchNearby(ctx, coords.Latitude, coords.Longitude, e.opts.DetailSearchMeters, e.opts.DetailSearchResults)
		if err != nil {
			e.logger.Warn("Directory lookup failed",
				zap.String("station", id),
				zap.Error(err))
		} else if match, ok := MatchRecord(b.station, recs, utils.MetersToDegrees(e.opts.DetailMatchMeters)); ok {
			e.enrich(b, match)
		}
	}

	if len(b.station.PhotoRefs) == 0 && coords != nil {
		e.applyPhotoFallbacks(ctx, b)
	}

	s := b.Station()
	s.LastVerifiedAt = now
	return &s, nil
}

// applyPhotoFallbacks borrows photos from a business at the same spot, then
// falls back to a street-level imagery reference. Neither step fails the
// request.
func (e *Engine) applyPhotoFallbacks(ctx context.Context, b *Builder) {
	coords := *b.station.Coordinates

	if locator, ok := e.directory.(BusinessLocator); ok {
		refs, err := e.businessPhotos(ctx, locator, coords)
		if err != nil {
			e.logger.Warn("Business photo fallback failed",
				zap.String("station", b.station.SourceID),
				zap.Error(err))
		}
		if len(refs) > 0 {
			b.station.PhotoRefs = appendCapped(nil, refs, e.enricher.photoCap)
			return
		}
	}

	b.station.PhotoRefs = []string{StreetViewRef(coords)}
}

func (e *Engine) businessPhotos(ctx context.Context, locator BusinessLocator, coords Coordinates) ([]string, error) {
	candidates, err := locator.FetchNearbyBusinesses(ctx, coords.Latitude, coords.Longitude, e.opts.BusinessSearchMeters)
	if err != nil {
		return nil, fmt.Errorf("nearby businesses: %w", err)
	}
	station := Station{Coordinates: &coords}
	match, ok := MatchRecord(station, candidates, utils.MetersToDegrees(e.opts.BusinessMatchMeters))
	if !ok {
		return nil, nil
	}
	if len(match.PhotoRefs) > 0 {
		return match.PhotoRefs, nil
	}
	details, err := locator.FetchDetails(ctx, match.NativeID)
	if err != nil {
		return nil, fmt.Errorf("business details %s: %w", match.NativeID, err)
	}
	if details == nil {
		return nil, nil
	}
	return details.PhotoRefs, nil
}

// StreetViewPrefix marks a photo reference synthesized from coordinates.
const StreetViewPrefix = "streetview:"

// StreetViewRef builds the opaque street-level imagery reference for a point.
func StreetViewRef(c Coordinates) string {
	return fmt.Sprintf("%s%.7f,%.7f", StreetViewPrefix, c.Latitude, c.Longitude)
}

// sortByRating orders stations by combined rating, highest first. Stations
// without a rating keep their relative order at the end.
func sortByRating(stations []Station) {
	sort.SliceStable(stations, func(i, j int) bool {
		ri, rj := stations[i].Rating.Combined, stations[j].Rating.Combined
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		}
		return *ri > *rj
	})
}
