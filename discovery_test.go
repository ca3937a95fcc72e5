// FILE: lixenwraith/hhopts/discovery_test.go
package hhopts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolatedDiscovery(t *testing.T) TableDiscoveryOptions {
	t.Helper()
	t.Setenv("HHOPTSTEST_TABLES", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())

	opts := DefaultTableDiscoveryOptions("hhoptstest")
	opts.UseCurrentDir = false
	return opts
}

func TestDiscoverTableFile(t *testing.T) {
	t.Run("EnvVar", func(t *testing.T) {
		opts := isolatedDiscovery(t)
		t.Setenv("HHOPTSTEST_TABLES", "/explicit/tables.toml")
		assert.Equal(t, "/explicit/tables.toml", DiscoverTableFile(opts))
	})

	t.Run("CustomPathExtensionOrder", func(t *testing.T) {
		opts := isolatedDiscovery(t)
		dir := t.TempDir()
		writeFile(t, dir, "hhoptstest.json", jsonTables)
		yamlPath := writeFile(t, dir, "hhoptstest.yaml", yamlTables)
		opts.Paths = []string{dir}

		assert.Equal(t, yamlPath, DiscoverTableFile(opts))
	})

	t.Run("XDGConfigHome", func(t *testing.T) {
		opts := isolatedDiscovery(t)
		xdgHome := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdgHome)

		appDir := filepath.Join(xdgHome, "hhoptstest")
		require.NoError(t, os.MkdirAll(appDir, 0755))
		path := writeFile(t, appDir, "hhoptstest.toml", tomlTables)

		assert.Equal(t, path, DiscoverTableFile(opts))
	})

	t.Run("NothingFound", func(t *testing.T) {
		opts := isolatedDiscovery(t)
		assert.Equal(t, "", DiscoverTableFile(opts))
	})
}

func TestBuilderWithTableDiscovery(t *testing.T) {
	opts := isolatedDiscovery(t)
	dir := t.TempDir()
	writeFile(t, dir, "hhoptstest.toml", tomlTables)
	opts.Paths = []string{dir}

	r, err := NewBuilder().WithTableDiscovery(opts).Build()
	require.NoError(t, err)
	assert.Equal(t, "hhvm.new_flag", r.Canonicalize("eval.newflag"))

	// No file found leaves the built-in tables only
	r, err = NewBuilder().WithTableDiscovery(isolatedDiscovery(t)).Build()
	require.NoError(t, err)
	assert.Equal(t, "eval.newflag", r.Canonicalize("eval.newflag"))
}
