// Package app assembles the suburbscope service from its parts.
package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"suburbscope/internal/catalog"
	"suburbscope/internal/config"
	"suburbscope/internal/fetch"
	"suburbscope/internal/logger"
	dashhttp "suburbscope/internal/transport/http/dash"
)

// App holds the wired service: catalog registry, fetch client and the
// dashboard HTTP server.
type App struct {
	cfg      *config.Config
	catalog  *catalog.Registry
	client   *fetch.Client
	dashHTTP *dashhttp.Server
}

// NewApp builds the application from config without starting it.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)

	client := fetch.NewClient(fetch.Options{
		ProxyBase:    cfg.Proxy.Base,
		UpstreamBase: cfg.Proxy.UpstreamBase,
		PathPrefix:   cfg.Proxy.PathPrefix,
		UseProxy:     cfg.Proxy.UseProxy,
		Timeout:      time.Duration(cfg.Proxy.TimeoutSeconds) * time.Second,
	})

	reg, err := catalog.NewRegistry(cfg.Catalog.Path)
	if err != nil {
		logger.Warnf("catalog unavailable, dropdowns will be empty: %v", err)
		reg = nil
	}
	if reg != nil {
		reg.OnChange(func(snap catalog.Snapshot) {
			logger.Infof("catalog updated: version=%d endpoints=%d", snap.Version, len(snap.Endpoints))
		})
	}

	server, err := dashhttp.NewServer(dashhttp.ServerConfig{
		Addr:    cfg.App.HTTPAddr,
		Client:  client,
		Catalog: reg,
	})
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, catalog: reg, client: client, dashHTTP: server}, nil
}

// Run starts the HTTP server and blocks until ctx cancels or it fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Infof("dashboard listening on %s", a.dashHTTP.Addr())
		if err := a.dashHTTP.Start(ctx); err != nil {
			return fmt.Errorf("dashboard http server error: %w", err)
		}
		return nil
	})
	return group.Wait()
}
