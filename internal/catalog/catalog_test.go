package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistryLoadsEntries(t *testing.T) {
	path := writeCatalog(t, `
endpoints:
  market:
    path: market
    description: Median prices
  schools:
    description: Nearby schools
suburbs:
  - name: Testville
    slug: testville
  - name: ""
    slug: ""
`)
	reg, err := NewRegistry(path)
	require.NoError(t, err)

	snap := reg.Snapshot()
	require.Len(t, snap.Endpoints, 2)
	assert.Equal(t, "market", snap.Endpoints[0].Name)
	assert.Equal(t, "schools", snap.Endpoints[1].Name)
	assert.Equal(t, "schools", snap.Endpoints[1].Path, "path falls back to the entry name")

	require.Len(t, snap.Suburbs, 1, "suburbs without a slug are skipped")
	assert.Equal(t, "testville", snap.Suburbs[0].Slug)
	assert.EqualValues(t, 1, snap.Version)
}

func TestRegistryEndpointLookup(t *testing.T) {
	path := writeCatalog(t, `
endpoints:
  market:
    path: market-v2
`)
	reg, err := NewRegistry(path)
	require.NoError(t, err)

	ep, ok := reg.Endpoint("market")
	require.True(t, ok)
	assert.Equal(t, "market-v2", ep.Path)

	_, ok = reg.Endpoint("unknown")
	assert.False(t, ok)
}

func TestNewRegistryRequiresPath(t *testing.T) {
	_, err := NewRegistry("")
	assert.Error(t, err)

	_, err = NewRegistry(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateEndpoint(t *testing.T) {
	assert.NoError(t, validateEndpoint(Endpoint{Name: "market", Path: "market"}))
	assert.Error(t, validateEndpoint(Endpoint{Name: "bad", Path: ""}))
}

func TestSnapshotIsACopy(t *testing.T) {
	path := writeCatalog(t, `
endpoints:
  market:
    path: market
`)
	reg, err := NewRegistry(path)
	require.NoError(t, err)

	snap := reg.Snapshot()
	snap.Endpoints[0].Path = "mutated"
	again := reg.Snapshot()
	assert.Equal(t, "market", again.Endpoints[0].Path)
}
