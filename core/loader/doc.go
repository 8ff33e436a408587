// Package loader provides the plugin-like feature loading system.
//
// Each feature implements Feature. The Manager loads enabled features in
// registration order and skips the ones whose dependencies are missing, for
// example search history when no database is reachable.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
