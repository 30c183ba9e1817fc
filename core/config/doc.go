// Package config provides type-safe environment variable loading with
// per-type caching. It parses env struct tags via the caarlos0/env library
// and loads a .env file once per process before the first parse.
//
// Basic usage:
//
//	type AppConfig struct {
//		Port   int    `env:"PORT" envDefault:"8080"`
//		Secret string `env:"SESSION_SIGNING_KEY,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per application lifetime; later
// calls with the same type return the cached value.
package config
