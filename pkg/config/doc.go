// Package config loads typed configuration structs from environment
// variables, with optional .env files for local development. Each struct
// type is parsed once per process and cached, so independent packages can
// load their own config without re-reading the environment.
//
//	type APIConfig struct {
//	    BaseURL string        `env:"CASTKIT_API_BASE_URL" envDefault:"http://localhost:8000"`
//	    Timeout time.Duration `env:"CASTKIT_API_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Tests that mutate the environment should call ResetCache between cases.
package config
