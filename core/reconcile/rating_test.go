package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineRatings(t *testing.T) {
	tests := []struct {
		name      string
		registry  *RatingSource
		directory *RatingSource
		want      *float64
		wantTotal int
	}{
		{
			name:      "both present is weighted",
			registry:  &RatingSource{Value: 4.0, ReviewCount: 10},
			directory: &RatingSource{Value: 5.0, ReviewCount: 30},
			want:      floatPtr(4.75),
			wantTotal: 40,
		},
		{
			name:      "only directory",
			directory: &RatingSource{Value: 4.5, ReviewCount: 120},
			want:      floatPtr(4.5),
			wantTotal: 120,
		},
		{
			name:      "only registry",
			registry:  &RatingSource{Value: 3.2, ReviewCount: 4},
			want:      floatPtr(3.2),
			wantTotal: 4,
		},
		{
			name:      "neither",
			want:      nil,
			wantTotal: 0,
		},
		{
			name:      "rounds half up",
			registry:  &RatingSource{Value: 4.0, ReviewCount: 1},
			directory: &RatingSource{Value: 4.25, ReviewCount: 1},
			want:      floatPtr(4.13),
			wantTotal: 2,
		},
		{
			name:      "zero reviews on both uses plain mean",
			registry:  &RatingSource{Value: 4.0},
			directory: &RatingSource{Value: 3.0},
			want:      floatPtr(3.5),
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := CombineRatings(tt.registry, tt.directory)
			assert.Equal(t, tt.wantTotal, total)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestRatingRecompute_Idempotent(t *testing.T) {
	r := Rating{
		Registry:  &RatingSource{Value: 4.0, ReviewCount: 10},
		Directory: &RatingSource{Value: 5.0, ReviewCount: 30},
	}
	r.Recompute()
	first := *r.Combined
	r.Recompute()

	assert.Equal(t, first, *r.Combined)
	assert.Equal(t, 40, r.TotalReviews)
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }
