package config

import (
	"reflect"
	"strings"

	"charge-finder/core/database"
	"charge-finder/core/logger"
	"charge-finder/core/reconcile"
	"charge-finder/core/server"
	"charge-finder/core/storage"
	"charge-finder/feature/directory"
	"charge-finder/feature/registry"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database backs the optional search history.
	Database database.Config `mapstructure:"database"`
	// Storage backs the snapshot archive.
	Storage storage.Config `mapstructure:"storage"`
	// Registry is the primary station provider.
	Registry registry.Config `mapstructure:"registry"`
	// Directory is the enrichment provider.
	Directory directory.Config `mapstructure:"directory"`
	// Matching tunes reconciliation thresholds.
	Matching reconcile.Config `mapstructure:"matching"`
}

// LoadConfig loads configuration from environment variables and a .env file
// found in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// REGISTRY_API_KEY -> registry.api_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// 'default' tag so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Set even empty defaults so the key exists for AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
