// Package config centralizes all application configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Go projects typically manage configuration in one of these ways:
//  1. Struct literals with defaults (fine for MVPs)
//  2. Environment variables via os.Getenv() or "github.com/kelseyhightower/envconfig"
//  3. Config files (YAML/TOML) via "github.com/spf13/viper"
//  4. Command-line flags via the standard "flag" package
//
// This service has no config file — construction is a parameter (precision)
// plus a handful of environment overrides (spec.md §6.3) — so viper is used
// purely as an env-var reader: SetDefault establishes the baseline, then
// AutomaticEnv lets an operator override any field without touching
// code, the same role it plays in tabular's FromYaml loader.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level configuration container.
//
// Go Learning Note — Struct Composition:
// Go doesn't have classes or inheritance. Instead, you compose structs by
// embedding or nesting them. Here Config "has a" Server and Geo config. This
// is composition over inheritance — a core Go design principle.
type Config struct {
	Server ServerConfig
	Geo    GeoConfig
	Log    LogConfig
}

// ServerConfig holds the two listener addresses the process binds
// (spec.md §6.3): the RPC surface and the HTTP surface are independent
// ports so either can be load-balanced or firewalled separately.
type ServerConfig struct {
	RPCAddr  string
	HTTPAddr string
}

// GeoConfig controls geohash encoding precision. Precision 6 ≈ 1.2 km cells,
// precision 7 ≈ 150 m cells. Higher precision means smaller cells and more
// accurate proximity queries, but requires scanning more neighboring cells
// per unit of search radius.
type GeoConfig struct {
	Precision int
}

// LogConfig controls zerolog's global level.
type LogConfig struct {
	Level string
}

const (
	envPrefix = "GEOINDEX"

	defaultRPCAddr  = ":50051"
	defaultHTTPAddr = ":8080"
	defaultLogLevel = "info"
)

// Load reads configuration from the environment, falling back to defaults
// for anything unset (spec.md §6.3: GEOINDEX_RPC_ADDR, GEOINDEX_HTTP_ADDR,
// GEOINDEX_PRECISION, GEOINDEX_LOG_LEVEL).
//
// Go Learning Note — viper.New() over the package-level viper:
// A fresh *viper.Viper avoids leaking global state into tests that construct
// their own Config — the same reasoning tabular's FromYaml applies when it
// calls viper.New() instead of using viper's package-level singleton.
func Load() *Config {
	vp := viper.New()
	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	vp.SetDefault("rpc_addr", defaultRPCAddr)
	vp.SetDefault("http_addr", defaultHTTPAddr)
	vp.SetDefault("precision", geoDefaultPrecision)
	vp.SetDefault("log_level", defaultLogLevel)

	return &Config{
		Server: ServerConfig{
			RPCAddr:  vp.GetString("rpc_addr"),
			HTTPAddr: vp.GetString("http_addr"),
		},
		Geo: GeoConfig{
			Precision: vp.GetInt("precision"),
		},
		Log: LogConfig{
			Level: vp.GetString("log_level"),
		},
	}
}

// geoDefaultPrecision mirrors geo.DefaultPrecision without importing the geo
// package here, keeping config free of a dependency on the domain package it
// configures.
const geoDefaultPrecision = 7
