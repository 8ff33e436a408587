package reconcile

import (
	"fmt"
	"math"
	"strings"
)

// PowerToleranceKW is the maximum power difference for a registry connector
// and a directory bucket to be considered the same physical connectors.
const PowerToleranceKW = 2.0

const directoryTypePrefix = "EV_CONNECTOR_TYPE_"

// Shared connector vocabulary.
const (
	ConnectorType2      = "Type 2 (Mennekes)"
	ConnectorCCS1       = "CCS (Type 1)"
	ConnectorCCS2       = "CCS (Type 2)"
	ConnectorType1      = "Type 1 (J1772)"
	ConnectorCHAdeMO    = "CHAdeMO"
	ConnectorNACS       = "NACS (Tesla)"
	ConnectorGBT        = "GB/T"
	ConnectorWallOutlet = "Wall Outlet"
)

var directoryConnectorCodes = map[string]string{
	"TYPE_2":      ConnectorType2,
	"CCS_COMBO_1": ConnectorCCS1,
	"CCS_COMBO_2": ConnectorCCS2,
	"J1772":       ConnectorType1,
	"CHADEMO":     ConnectorCHAdeMO,
	"TESLA":       ConnectorNACS,
	"NACS":        ConnectorNACS,
	"GB_T":        ConnectorGBT,
	"WALL_OUTLET": ConnectorWallOutlet,
}

// NormalizeDirectoryType maps a directory enum code to the shared vocabulary.
// Unknown codes are returned with the provider prefix stripped.
func NormalizeDirectoryType(code string) string {
	trimmed := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(code)), directoryTypePrefix)
	if name, ok := directoryConnectorCodes[trimmed]; ok {
		return name
	}
	return trimmed
}

// NormalizeRegistryType maps a registry free-text connector title to the
// shared vocabulary. CCS is checked before the bare Type 1/Type 2 names since
// registry titles for CCS usually mention the underlying type as well.
func NormalizeRegistryType(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "ccs") || strings.Contains(t, "combo"):
		if strings.Contains(t, "type 1") || strings.Contains(t, "combo 1") || strings.Contains(t, "sae") {
			return ConnectorCCS1
		}
		return ConnectorCCS2
	case strings.Contains(t, "chademo"):
		return ConnectorCHAdeMO
	case strings.Contains(t, "tesla") || strings.Contains(t, "nacs"):
		return ConnectorNACS
	case strings.Contains(t, "gb/t") || strings.Contains(t, "gbt") || strings.Contains(t, "gb_t"):
		return ConnectorGBT
	case strings.Contains(t, "mennekes") || strings.Contains(t, "type 2"):
		return ConnectorType2
	case strings.Contains(t, "j1772") || strings.Contains(t, "type 1"):
		return ConnectorType1
	case strings.Contains(t, "wall") || strings.Contains(t, "domestic") || strings.Contains(t, "schuko"):
		return ConnectorWallOutlet
	}
	return strings.TrimSpace(title)
}

// ValidateBuckets rejects directory buckets that cannot be merged.
func ValidateBuckets(buckets []ConnectorBucket) error {
	for i, b := range buckets {
		if strings.TrimSpace(b.Type) == "" {
			return fmt.Errorf("bucket %d: missing connector type", i)
		}
		if b.Count < 0 {
			return fmt.Errorf("bucket %d: negative count %d", i, b.Count)
		}
		if b.MaxChargeRateKW != nil && (math.IsNaN(*b.MaxChargeRateKW) || *b.MaxChargeRateKW < 0) {
			return fmt.Errorf("bucket %d: invalid charge rate", i)
		}
	}
	return nil
}

// ReconcileConnectors merges directory buckets into the registry connector
// list and returns the new list with its total quantity. The input slice is
// not modified. Directory-provenance records and telemetry left by an earlier
// merge are discarded first, so repeated calls with the same buckets give the
// same result.
func ReconcileConnectors(existing []ConnectorRecord, buckets []ConnectorBucket) ([]ConnectorRecord, int) {
	merged := make([]ConnectorRecord, 0, len(existing)+len(buckets))
	for _, c := range existing {
		if c.Provenance == ProvenanceDirectory {
			continue
		}
		c.AvailableCount = nil
		c.OutOfServiceCount = nil
		c.MaxChargeRateKW = nil
		c.AvailabilityUpdatedAt = nil
		merged = append(merged, c)
	}

	consumed := make([]bool, len(buckets))
	for i := range merged {
		rec := &merged[i]
		for j, b := range buckets {
			if consumed[j] || !bucketMatches(*rec, b) {
				continue
			}
			rec.AvailableCount = copyInt(b.AvailableCount)
			rec.OutOfServiceCount = copyInt(b.OutOfServiceCount)
			rec.MaxChargeRateKW = copyFloat(b.MaxChargeRateKW)
			if b.AvailabilityUpdatedAt != nil {
				ts := *b.AvailabilityUpdatedAt
				rec.AvailabilityUpdatedAt = &ts
			}
			consumed[j] = true
			break
		}
	}

	for j, b := range buckets {
		if consumed[j] {
			continue
		}
		rec := ConnectorRecord{
			Type:              NormalizeDirectoryType(b.Type),
			PowerKW:           copyFloat(b.MaxChargeRateKW),
			MaxChargeRateKW:   copyFloat(b.MaxChargeRateKW),
			Quantity:          b.Count,
			AvailableCount:    copyInt(b.AvailableCount),
			OutOfServiceCount: copyInt(b.OutOfServiceCount),
			Provenance:        ProvenanceDirectory,
		}
		if b.AvailabilityUpdatedAt != nil {
			ts := *b.AvailabilityUpdatedAt
			rec.AvailabilityUpdatedAt = &ts
		}
		merged = append(merged, rec)
	}

	total := 0
	for _, c := range merged {
		total += c.Quantity
	}
	return merged, total
}

func bucketMatches(rec ConnectorRecord, b ConnectorBucket) bool {
	if !strings.EqualFold(rec.Type, NormalizeDirectoryType(b.Type)) {
		return false
	}
	if rec.PowerKW == nil || b.MaxChargeRateKW == nil {
		return false
	}
	return math.Abs(*rec.PowerKW-*b.MaxChargeRateKW) <= PowerToleranceKW
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
