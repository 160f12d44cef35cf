package config

import "strings"

// Config is the top-level suburbscope configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Proxy   ProxyConfig   `mapstructure:"proxy"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	HTTPAddr string `mapstructure:"http_addr"`
	LogPath  string `mapstructure:"log_path"`
}

// ProxyConfig describes how report requests reach the upstream data API.
type ProxyConfig struct {
	Base           string `mapstructure:"base"`
	UpstreamBase   string `mapstructure:"upstream_base"`
	PathPrefix     string `mapstructure:"path_prefix"` // "suburb" | "sandbox/suburb"
	UseProxy       bool   `mapstructure:"use_proxy"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// keySet tracks which config paths the file set explicitly, so defaults
// only fill genuinely absent fields.
type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return false
	}
	_, ok := k[path]
	return ok
}

// fieldDefault describes the default rule for a single field.
type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}
