package directory

import (
	"time"

	"charge-finder/core/reconcile"

	"go.uber.org/zap"
)

func (c *Client) placeToRecord(p Place) reconcile.RawRecord {
	rec := reconcile.RawRecord{
		NativeID:   p.ID,
		Types:      p.Types,
		PhotoCount: len(p.Photos),
	}
	if p.DisplayName != nil {
		rec.Name = p.DisplayName.Text
	}
	if p.Location != nil {
		rec.Coordinates = &reconcile.Coordinates{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude}
	}
	rec.Rating = ratingSource(p.Rating, p.UserRatingCount)
	if p.CurrentOpeningHours != nil {
		rec.OpeningHours = p.CurrentOpeningHours.WeekdayDescriptions
	}
	for _, photo := range p.Photos {
		if photo.Name != "" {
			rec.PhotoRefs = append(rec.PhotoRefs, photo.Name)
		}
	}
	if p.EVChargeOptions != nil {
		for _, agg := range p.EVChargeOptions.ConnectorAggregation {
			rec.EVConnectors = append(rec.EVConnectors, c.toBucket(p.ID, agg))
		}
	}
	return rec
}

func (c *Client) toBucket(placeID string, agg ConnectorAggregation) reconcile.ConnectorBucket {
	b := reconcile.ConnectorBucket{
		Type:              agg.Type,
		Count:             agg.Count,
		AvailableCount:    agg.AvailableCount,
		OutOfServiceCount: agg.OutOfServiceCount,
		MaxChargeRateKW:   agg.MaxChargeRateKW,
	}
	if agg.AvailabilityLastUpdateTime != "" {
		ts, err := time.Parse(time.RFC3339, agg.AvailabilityLastUpdateTime)
		if err != nil {
			c.logger.Debug("Ignoring malformed availability timestamp",
				zap.String("place", placeID),
				zap.String("value", agg.AvailabilityLastUpdateTime))
		} else {
			ts = ts.UTC()
			b.AvailabilityUpdatedAt = &ts
		}
	}
	return b
}

func legacyToRecord(p legacyPlace) reconcile.RawRecord {
	rec := reconcile.RawRecord{
		NativeID:   p.PlaceID,
		Name:       p.Name,
		Types:      p.Types,
		PhotoCount: len(p.Photos),
		Rating:     ratingSource(p.Rating, p.UserRatingsTotal),
	}
	if p.Geometry != nil && p.Geometry.Location != nil {
		rec.Coordinates = &reconcile.Coordinates{Latitude: p.Geometry.Location.Lat, Longitude: p.Geometry.Location.Lng}
	}
	if p.OpeningHours != nil {
		rec.OpeningHours = p.OpeningHours.WeekdayText
	}
	for _, photo := range p.Photos {
		if photo.PhotoReference != "" {
			rec.PhotoRefs = append(rec.PhotoRefs, photo.PhotoReference)
		}
	}
	return rec
}

func ratingSource(value *float64, count *int) *reconcile.RatingSource {
	if value == nil {
		return nil
	}
	src := &reconcile.RatingSource{Value: *value}
	if count != nil {
		src.ReviewCount = *count
	}
	return src
}
