package config

import (
	"fmt"
	"strings"
)

func validate(c *Config) error {
	if err := c.Proxy.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.App.HTTPAddr) == "" {
		return fmt.Errorf("app.http_addr cannot be empty")
	}
	return nil
}

func (p *ProxyConfig) validate() error {
	switch strings.Trim(p.PathPrefix, "/") {
	case "suburb", "sandbox/suburb":
	default:
		return fmt.Errorf("proxy.path_prefix must be %q or %q, got %q", "suburb", "sandbox/suburb", p.PathPrefix)
	}
	if p.UseProxy && strings.TrimSpace(p.Base) == "" {
		return fmt.Errorf("proxy.base required when proxy.use_proxy is true")
	}
	if !p.UseProxy && strings.TrimSpace(p.UpstreamBase) == "" {
		return fmt.Errorf("proxy.upstream_base required when proxy.use_proxy is false")
	}
	return nil
}
