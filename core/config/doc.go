// Package config loads typed configuration from environment variables with
// per-type caching.
//
//	type HTTPConfig struct {
//		Addr  string `env:"HTTP_ADDR" envDefault:":8080"`
//		Debug bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is loaded automatically on first use.
// Each configuration type is parsed exactly once per process; later loads of
// the same type return the cached value.
package config
