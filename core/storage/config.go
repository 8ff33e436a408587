package storage

// Config holds configuration for the snapshot object store.
type Config struct {
	// Endpoint is the host:port of the S3 compatible service.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives reconciled station snapshots.
	Bucket string `mapstructure:"bucket" default:"charge-finder"`
	// Region is the bucket location (e.g. us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
