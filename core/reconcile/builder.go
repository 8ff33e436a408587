package reconcile

// Builder accumulates enrichment for one station during a single
// reconciliation pass. Each builder is owned by exactly one assembling flow.
type Builder struct {
	station  Station
	enriched bool
}

// NewBuilder starts a builder from a normalized station.
func NewBuilder(s Station) *Builder {
	return &Builder{station: cloneStation(s)}
}

// Enriched reports whether any directory record was applied.
func (b *Builder) Enriched() bool {
	return b.enriched
}

// Station returns a copy of the accumulated station.
func (b *Builder) Station() Station {
	return cloneStation(b.station)
}

func cloneStation(s Station) Station {
	out := s
	if s.Address != nil {
		addr := *s.Address
		out.Address = &addr
	}
	if s.Coordinates != nil {
		c := *s.Coordinates
		out.Coordinates = &c
	}
	if s.Operator != nil {
		op := *s.Operator
		out.Operator = &op
	}
	if s.Usage != nil {
		u := *s.Usage
		out.Usage = &u
	}
	out.Connectors = make([]ConnectorRecord, len(s.Connectors))
	for i, c := range s.Connectors {
		c.IsOperational = copyBool(c.IsOperational)
		c.PowerKW = copyFloat(c.PowerKW)
		c.MaxChargeRateKW = copyFloat(c.MaxChargeRateKW)
		c.AvailableCount = copyInt(c.AvailableCount)
		c.OutOfServiceCount = copyInt(c.OutOfServiceCount)
		if c.AvailabilityUpdatedAt != nil {
			ts := *c.AvailabilityUpdatedAt
			c.AvailabilityUpdatedAt = &ts
		}
		out.Connectors[i] = c
	}
	out.Rating = Rating{
		Registry:     copyRatingSource(s.Rating.Registry),
		Directory:    copyRatingSource(s.Rating.Directory),
		Combined:     copyFloat(s.Rating.Combined),
		TotalReviews: s.Rating.TotalReviews,
	}
	out.OpeningHours = append([]string{}, s.OpeningHours...)
	out.PhotoRefs = append([]string{}, s.PhotoRefs...)
	out.Amenities = append([]string{}, s.Amenities...)
	return out
}

func copyRatingSource(r *RatingSource) *RatingSource {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}
