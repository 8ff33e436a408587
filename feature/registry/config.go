package registry

// Config holds configuration for the registry client.
type Config struct {
	// BaseURL is the API root, without the /poi/ path.
	BaseURL string `mapstructure:"base_url" default:"https://api.openchargemap.io/v3"`
	// ApiKey is sent as the "key" query parameter.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds each outbound call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// IDPrefix is prepended to native ids to build station ids.
	IDPrefix string `mapstructure:"id_prefix" default:"ocm"`
}
