package directory

// Config holds configuration for the directory client.
type Config struct {
	// BaseURL is the v1 API root.
	BaseURL string `mapstructure:"base_url" default:"https://places.googleapis.com/v1"`
	// LegacyBaseURL is the root of the legacy place endpoints.
	LegacyBaseURL string `mapstructure:"legacy_base_url" default:"https://maps.googleapis.com/maps/api/place"`
	// StreetViewURL is the street-level imagery endpoint.
	StreetViewURL string `mapstructure:"street_view_url" default:"https://maps.googleapis.com/maps/api/streetview"`
	// ApiKey authenticates every call. An empty key disables the directory.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds each outbound call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// PageSize caps v1 search results. The API allows at most 20.
	PageSize int `mapstructure:"page_size" default:"20"`
	// Language is the response language code.
	Language string `mapstructure:"language" default:"en"`
	// TextQuery is the v1 search phrase.
	TextQuery string `mapstructure:"text_query" default:"EV charging station"`
	// PhotoMaxWidth is requested when building photo URLs.
	PhotoMaxWidth int `mapstructure:"photo_max_width" default:"800"`
}

// Enabled reports whether the directory can be called.
func (c Config) Enabled() bool {
	return c.ApiKey != ""
}
