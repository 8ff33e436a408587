// Package config loads application settings from the environment and an
// optional .env file.
//
// Every section struct declares its keys with mapstructure tags and its
// defaults with default tags. bindValues registers them with Viper so that
// an environment variable such as DIRECTORY_API_KEY maps onto
// directory.api_key.
//
// Sections: server, log, database, storage, registry, directory, matching.
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
