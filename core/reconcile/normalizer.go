package reconcile

import (
	"strings"
	"time"

	"charge-finder/core/utils"
)

// coordinatePrecision is the number of decimals kept on station coordinates.
const coordinatePrecision = 7

// Normalize converts a registry record into a canonical station. Directory
// fields are left at their zero values. A missing address block yields the
// placeholder name instead of an error.
func Normalize(rec RawRecord, prefix string, now time.Time) Station {
	s := Station{
		RegistryUUID:  rec.UUID,
		Name:          strings.TrimSpace(rec.Name),
		IsOperational: true,
		Connectors:    []ConnectorRecord{},
		OpeningHours:  []string{},
		PhotoRefs:     []string{},
		Amenities:     []string{},
		LastSyncAt:    now,
	}
	if rec.NativeID != "" {
		s.SourceID = StationID(prefix, rec.NativeID)
	}
	if rec.Address == nil || s.Name == "" {
		s.Name = PlaceholderName
	}
	if rec.Address != nil {
		addr := *rec.Address
		s.Address = &addr
	}
	if rec.Coordinates != nil {
		s.Coordinates = &Coordinates{
			Latitude:  utils.Round(rec.Coordinates.Latitude, coordinatePrecision),
			Longitude: utils.Round(rec.Coordinates.Longitude, coordinatePrecision),
		}
	}
	if rec.Operator != nil {
		op := *rec.Operator
		s.Operator = &op
	}
	if rec.Usage != nil {
		usage := *rec.Usage
		s.Usage = &usage
	}
	if rec.Operational != nil {
		s.IsOperational = *rec.Operational
	}

	if len(rec.Connections) == 0 {
		s.TotalConnectors = rec.PointCount
		return s
	}

	for _, conn := range rec.Connections {
		qty := 1
		if conn.Quantity != nil {
			qty = *conn.Quantity
		}
		s.Connectors = append(s.Connectors, ConnectorRecord{
			Type:          NormalizeRegistryType(conn.Title),
			Title:         conn.Title,
			FormalName:    conn.FormalName,
			Level:         conn.Level,
			CurrentType:   conn.CurrentType,
			Status:        conn.Status,
			IsOperational: copyBool(conn.Operational),
			PowerKW:       copyFloat(conn.PowerKW),
			Quantity:      qty,
			Provenance:    ProvenanceRegistry,
		})
		s.TotalConnectors += qty
	}
	return s
}

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
