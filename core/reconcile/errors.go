package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidIDFormat is returned when a station id is not <prefix>_<digits>.
	ErrInvalidIDFormat = errors.New("invalid station id format")
	// ErrInvalidQuery is returned for nearby queries with unusable coordinates.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrNotFound is returned when the registry has no record for an id.
	ErrNotFound = errors.New("station not found")
	// ErrProviderUnavailable wraps any transport or decoding failure of a provider.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrPartialEnrichment marks a failed enrichment sub-step. It is never
	// returned to callers of the engine.
	ErrPartialEnrichment = errors.New("partial enrichment")
)

// InvalidIDError describes a malformed station id.
type InvalidIDError struct {
	ID     string
	Reason string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid station id %q: %s", e.ID, e.Reason)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidIDFormat
}

// NotFoundError reports a station id the registry does not know.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("station %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ProviderError is a failed call to an upstream provider.
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Provider, e.Operation)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderUnavailable
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// EnrichmentError is a failed enrichment sub-step for one station.
type EnrichmentError struct {
	StationID string
	Step      string
	Err       error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrich %s (%s): %v", e.StationID, e.Step, e.Err)
}

func (e *EnrichmentError) Is(target error) bool {
	return target == ErrPartialEnrichment
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

// ParseStationID splits "<prefix>_<digits>" and returns the native id.
func ParseStationID(id, prefix string) (string, error) {
	want := prefix + "_"
	if !strings.HasPrefix(id, want) {
		return "", &InvalidIDError{ID: id, Reason: fmt.Sprintf("missing %q prefix", want)}
	}
	native := strings.TrimPrefix(id, want)
	if native == "" {
		return "", &InvalidIDError{ID: id, Reason: "empty native id"}
	}
	for _, r := range native {
		if r < '0' || r > '9' {
			return "", &InvalidIDError{ID: id, Reason: "native id must be numeric"}
		}
	}
	if _, err := strconv.ParseInt(native, 10, 64); err != nil {
		return "", &InvalidIDError{ID: id, Reason: "native id out of range"}
	}
	return native, nil
}

// StationID builds the canonical id for a registry native id.
func StationID(prefix, native string) string {
	return prefix + "_" + native
}
