package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPhotoCap is the maximum number of photo references kept per station.
const DefaultPhotoCap = 5

// Enricher applies a matched directory record onto a station builder.
type Enricher struct {
	photoCap int
}

// NewEnricher creates an enricher. A non-positive cap uses DefaultPhotoCap.
func NewEnricher(photoCap int) *Enricher {
	if photoCap <= 0 {
		photoCap = DefaultPhotoCap
	}
	return &Enricher{photoCap: photoCap}
}

// Enrich writes directory fields onto b. Sub-steps fail independently: a
// failed step leaves its fields untouched and is reported in the returned
// error, which satisfies errors.Is(err, ErrPartialEnrichment). Data already
// present on the station is never removed because the record lacks it.
func (e *Enricher) Enrich(b *Builder, rec RawRecord) error {
	s := &b.station
	b.enriched = true

	if rec.NativeID != "" {
		s.DirectoryID = rec.NativeID
	}
	if name := strings.TrimSpace(rec.Name); name != "" && s.Name == "" {
		s.Name = name
	}
	if rec.Rating != nil {
		r := *rec.Rating
		s.Rating.Directory = &r
	}
	s.Rating.Recompute()
	if len(rec.OpeningHours) > 0 {
		s.OpeningHours = append([]string{}, rec.OpeningHours...)
	}

	var errs []error
	record := func(step string, fn func() error) {
		if err := runStep(fn); err != nil {
			errs = append(errs, &EnrichmentError{StationID: s.SourceID, Step: step, Err: err})
		}
	}

	record("photos", func() error {
		return e.applyPhotos(s, rec)
	})
	record("amenities", func() error {
		s.Amenities = mergeTags(s.Amenities, MapAmenities(rec.Types))
		return nil
	})
	if len(rec.EVConnectors) > 0 {
		record("connectors", func() error {
			if err := ValidateBuckets(rec.EVConnectors); err != nil {
				return err
			}
			s.Connectors, s.TotalConnectors = ReconcileConnectors(s.Connectors, rec.EVConnectors)
			return nil
		})
	}

	return errors.Join(errs...)
}

func (e *Enricher) applyPhotos(s *Station, rec RawRecord) error {
	refs := make([]string, 0, len(rec.PhotoRefs))
	for _, ref := range rec.PhotoRefs {
		if ref = strings.TrimSpace(ref); ref != "" {
			refs = append(refs, ref)
		}
	}
	if len(refs) == 0 {
		if rec.PhotoCount > 0 {
			return fmt.Errorf("%d photos reported without references", rec.PhotoCount)
		}
		return nil
	}
	s.PhotoRefs = appendCapped(s.PhotoRefs, refs, e.photoCap)
	return nil
}

// appendCapped appends unseen refs to existing until the cap is reached.
func appendCapped(existing, refs []string, limit int) []string {
	out := append([]string{}, existing...)
	for _, ref := range refs {
		if len(out) >= limit {
			break
		}
		dup := false
		for _, have := range out {
			if have == ref {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, ref)
		}
	}
	return out
}

// runStep converts a panic inside an enrichment step into an error.
func runStep(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
