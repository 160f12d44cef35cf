// Package catalog manages the server-side list of known report endpoints
// and suburb slugs that populate the dashboard dropdowns. The catalog is
// advisory: user-typed custom slugs bypass it entirely.
package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"suburbscope/internal/logger"
)

// Endpoint describes one report endpoint on the upstream API.
type Endpoint struct {
	Name        string `mapstructure:"-" yaml:"name" json:"name"`
	Path        string `mapstructure:"path" yaml:"path" json:"path"`
	Description string `mapstructure:"description" yaml:"description" json:"description"`
}

// Suburb is a well-known suburb offered in the dropdown.
type Suburb struct {
	Name string `mapstructure:"name" yaml:"name" json:"name"`
	Slug string `mapstructure:"slug" yaml:"slug" json:"slug"`
}

// FileConfig maps the endpoints.yaml layout.
type FileConfig struct {
	Endpoints map[string]Endpoint `mapstructure:"endpoints" yaml:"endpoints"`
	Suburbs   []Suburb            `mapstructure:"suburbs" yaml:"suburbs"`
}

// Snapshot is an immutable view of the catalog.
type Snapshot struct {
	Version   int64      `json:"version"`
	LoadedAt  time.Time  `json:"loaded_at"`
	Endpoints []Endpoint `json:"endpoints"`
	Suburbs   []Suburb   `json:"suburbs"`
}

// ChangeListener fires after the registry reloads.
type ChangeListener func(Snapshot)

// Registry reads the catalog file and watches it for updates.
type Registry struct {
	path string
	v    *viper.Viper

	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []ChangeListener
}

const endpointSchemaJSON = `{
	"type": "object",
	"properties": {
		"path": {"type": "string", "minLength": 1},
		"description": {"type": "string"}
	},
	"required": ["path"]
}`

var endpointSchema = jsonschema.MustCompileString("endpoint.json", endpointSchemaJSON)

// NewRegistry reads the catalog file and starts watching it.
func NewRegistry(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog registry requires path")
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog failed: %w", err)
	}
	r := &Registry{path: path, v: v}
	if err := r.reload(); err != nil {
		return nil, err
	}
	v.OnConfigChange(func(evt fsnotify.Event) {
		if err := r.reload(); err != nil {
			logger.Errorf("catalog reload failed: %v", err)
			return
		}
		r.notifyListeners()
	})
	v.WatchConfig()
	return r, nil
}

// Snapshot returns the current catalog.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSnapshot(r.snapshot)
}

// Endpoint returns the endpoint registered under name.
func (r *Registry) Endpoint(name string) (Endpoint, bool) {
	name = strings.TrimSpace(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ep := range r.snapshot.Endpoints {
		if ep.Name == name {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// OnChange registers a listener invoked after each successful reload.
func (r *Registry) OnChange(fn ChangeListener) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

func (r *Registry) reload() error {
	if err := r.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read catalog failed: %w", err)
	}
	var cfg FileConfig
	if err := r.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parse catalog failed: %w", err)
	}
	endpoints := make([]Endpoint, 0, len(cfg.Endpoints))
	for name, ep := range cfg.Endpoints {
		ep.Name = strings.TrimSpace(name)
		ep.Path = strings.TrimSpace(ep.Path)
		if ep.Path == "" {
			ep.Path = ep.Name
		}
		if err := validateEndpoint(ep); err != nil {
			logger.Errorf("catalog endpoint %q rejected: %v", ep.Name, err)
			continue
		}
		endpoints = append(endpoints, ep)
	}
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Name < endpoints[j].Name })

	suburbs := make([]Suburb, 0, len(cfg.Suburbs))
	for _, s := range cfg.Suburbs {
		s.Name = strings.TrimSpace(s.Name)
		s.Slug = strings.TrimSpace(s.Slug)
		if s.Slug == "" {
			continue
		}
		suburbs = append(suburbs, s)
	}

	r.mu.Lock()
	r.snapshot = Snapshot{
		Version:   r.snapshot.Version + 1,
		LoadedAt:  time.Now(),
		Endpoints: endpoints,
		Suburbs:   suburbs,
	}
	r.mu.Unlock()
	logger.Infof("catalog loaded %d endpoints, %d suburbs from %s", len(endpoints), len(suburbs), filepath.Base(r.path))
	return nil
}

func validateEndpoint(ep Endpoint) error {
	raw, err := yaml.Marshal(ep)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	delete(doc, "name")
	// jsonschema validates the JSON shape, so round-trip through JSON
	// to normalize yaml-decoded types.
	buf, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var jsonDoc any
	if err := json.Unmarshal(buf, &jsonDoc); err != nil {
		return err
	}
	return endpointSchema.Validate(jsonDoc)
}

func (r *Registry) notifyListeners() {
	r.mu.RLock()
	snap := cloneSnapshot(r.snapshot)
	listeners := append([]ChangeListener(nil), r.listeners...)
	r.mu.RUnlock()
	for _, fn := range listeners {
		go func(cb ChangeListener) {
			defer safeRecover("catalog listener")
			cb(snap)
		}(fn)
	}
}

func cloneSnapshot(src Snapshot) Snapshot {
	dst := src
	dst.Endpoints = append([]Endpoint(nil), src.Endpoints...)
	dst.Suburbs = append([]Suburb(nil), src.Suburbs...)
	return dst
}

func safeRecover(tag string) {
	if rec := recover(); rec != nil {
		logger.Errorf("%s panic: %v", tag, rec)
	}
}
