package cmd

import (
	"fmt"

	"charge-finder/core/config"
	"charge-finder/core/logger"
	"charge-finder/core/reconcile"
	"charge-finder/feature/directory"
	"charge-finder/feature/integrity/checks"
	"charge-finder/feature/registry"
	"charge-finder/feature/stations"

	"go.uber.org/zap"
)

// components holds the pieces every command builds from configuration.
type components struct {
	cfg       *config.Config
	logger    *zap.Logger
	registry  *registry.Client
	directory *directory.Client
	engine    *reconcile.Engine
}

func newApp() (*components, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &components{cfg: cfg, logger: logg}
	a.registry = registry.NewClient(cfg.Registry, logg)

	// A nil *directory.Client must not reach the engine as a non-nil interface.
	var enrichment reconcile.Provider
	if cfg.Directory.Enabled() {
		a.directory = directory.NewClient(cfg.Directory, logg)
		enrichment = a.directory
	} else {
		logg.Warn("Directory API key not set, stations will not be enriched")
	}

	a.engine = reconcile.NewEngine(a.registry, enrichment, logg, cfg.Matching.Options())
	return a, nil
}

// stationService builds the HTTP/CLI adapter around the engine.
func (a *components) stationService(opts ...stations.Option) *stations.Service {
	var photos stations.PhotoResolver
	if a.directory != nil {
		photos = a.cfg.Directory
	}
	return stations.NewService(a.engine, photos, a.logger, opts...)
}

// probes lists the providers checked by the integrity feature.
func (a *components) probes() []checks.Probe {
	probes := []checks.Probe{{Role: "primary", Provider: a.registry}}
	if a.directory != nil {
		probes = append(probes, checks.Probe{Role: "enrichment", Provider: a.directory})
	}
	return probes
}
