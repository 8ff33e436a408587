package reconcile

// Config exposes the matching thresholds to configuration. Zero values fall
// back to DefaultOptions.
type Config struct {
	ListMatchMeters      float64 `mapstructure:"list_match_meters" default:"160"`
	DetailMatchMeters    float64 `mapstructure:"detail_match_meters" default:"150"`
	DetailSearchMeters   int     `mapstructure:"detail_search_meters" default:"150"`
	DetailSearchResults  int     `mapstructure:"detail_search_results" default:"5"`
	BusinessSearchMeters int     `mapstructure:"business_search_meters" default:"50"`
	BusinessMatchMeters  float64 `mapstructure:"business_match_meters" default:"55.5"`
	PhotoCap             int     `mapstructure:"photo_cap" default:"5"`
}

// Options converts the configuration into engine options.
func (c Config) Options() Options {
	opts := DefaultOptions()
	if c.ListMatchMeters > 0 {
		opts.ListMatchMeters = c.ListMatchMeters
	}
	if c.DetailMatchMeters > 0 {
		opts.DetailMatchMeters = c.DetailMatchMeters
	}
	if c.DetailSearchMeters > 0 {
		opts.DetailSearchMeters = c.DetailSearchMeters
	}
	if c.DetailSearchResults > 0 {
		opts.DetailSearchResults = c.DetailSearchResults
	}
	if c.BusinessSearchMeters > 0 {
		opts.BusinessSearchMeters = c.BusinessSearchMeters
	}
	if c.BusinessMatchMeters > 0 {
		opts.BusinessMatchMeters = c.BusinessMatchMeters
	}
	if c.PhotoCap > 0 {
		opts.PhotoCap = c.PhotoCap
	}
	return opts
}
