package checks

import (
	"context"
	"time"

	"charge-finder/core/reconcile"

	"golang.org/x/sync/errgroup"
)

// ProbeRadiusMeters is the search radius of a provider probe.
const ProbeRadiusMeters = 1000

// ProviderStatus is the result of probing one provider.
type ProviderStatus struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Status    string `json:"status"` // "ok", "error"
	Results   int    `json:"results"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Probe is a provider checked by CheckProviders.
type Probe struct {
	Role     string
	Provider reconcile.Provider
}

// CheckProviders runs one small nearby search per provider concurrently.
// Failures are reported per provider and never returned as an error.
func CheckProviders(ctx context.Context, lat, lon float64, probes ...Probe) []ProviderStatus {
	out := make([]ProviderStatus, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			start := time.Now()
			recs, err := p.Provider.FetchNearby(ctx, lat, lon, ProbeRadiusMeters, 1)
			st := ProviderStatus{
				Name:      p.Provider.Name(),
				Role:      p.Role,
				Status:    "ok",
				Results:   len(recs),
				LatencyMS: time.Since(start).Milliseconds(),
			}
			if err != nil {
				st.Status = "error"
				st.Error = err.Error()
			}
			out[i] = st
			return nil
		})
	}
	_ = g.Wait()
	return out
}
