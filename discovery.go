// FILE: lixenwraith/hhopts/discovery.go
package hhopts

import (
	"os"
	"path/filepath"
	"strings"
)

// TableDiscoveryOptions configures automatic table file discovery
type TableDiscoveryOptions struct {
	// Base name of the table file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths, searched before the defaults
	Paths []string

	// Environment variable holding an explicit path
	EnvVar string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in the current directory
	UseCurrentDir bool
}

// DefaultTableDiscoveryOptions returns discovery options for appName.
func DefaultTableDiscoveryOptions(appName string) TableDiscoveryOptions {
	return TableDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_TABLES",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverTableFile returns the first table file found, or "" if none exists.
// An explicit path in EnvVar is returned as-is without checking it exists, so a
// wrong path surfaces as a load error instead of being silently skipped.
func DiscoverTableFile(opts TableDiscoveryOptions) string {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}

	return ""
}

// WithTableDiscovery adds the discovered table file, if any.
func (b *Builder) WithTableDiscovery(opts TableDiscoveryOptions) *Builder {
	return b.WithTableFile(DiscoverTableFile(opts))
}

// xdgConfigPaths returns XDG-compliant config search paths
func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths, filepath.Join("/etc/xdg", appName))
	}

	return paths
}
