package reconcile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStationID(t *testing.T) {
	tests := []struct {
		id      string
		want    string
		wantErr bool
	}{
		{"ocm_12345", "12345", false},
		{"ocm_0", "0", false},
		{"ocm_", "", true},
		{"12345", "", true},
		{"gp_12345", "", true},
		{"ocm_12a", "", true},
		{"ocm_-1", "", true},
		{"ocm_99999999999999999999", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseStationID(tt.id, "ocm")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIDFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	provider := &ProviderError{Provider: "registry", Operation: "nearby", StatusCode: 503, Err: cause}

	assert.ErrorIs(t, provider, ErrProviderUnavailable)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", provider), ErrProviderUnavailable)
	assert.ErrorIs(t, provider, cause)
	assert.Equal(t, "registry nearby: status 503: dial tcp: timeout", provider.Error())

	assert.ErrorIs(t, &NotFoundError{ID: "ocm_1"}, ErrNotFound)
	assert.ErrorIs(t, &EnrichmentError{StationID: "ocm_1", Step: "photos", Err: cause}, ErrPartialEnrichment)
	assert.False(t, errors.Is(&NotFoundError{ID: "ocm_1"}, ErrProviderUnavailable))
}
