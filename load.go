// FILE: lixenwraith/hhopts/load.go
package hhopts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// MaxTableFileSize bounds the size of a table file read by LoadTableFile.
const MaxTableFileSize = 1 << 20

// TableFile holds extra alias and decoder rows read from a file.
//
// TOML form:
//
//	[aliases]
//	"eval.somethingnew" = "hhvm.something_new"
//
//	[decoders]
//	"hhvm.something_new" = "int"
type TableFile struct {
	Aliases  map[string]string `toml:"aliases" yaml:"aliases" json:"aliases"`
	Decoders map[string]string `toml:"decoders" yaml:"decoders" json:"decoders"`
}

// AliasEntries returns the alias rows sorted by alias.
func (f *TableFile) AliasEntries() []AliasEntry {
	aliases := make([]string, 0, len(f.Aliases))
	for alias := range f.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	entries := make([]AliasEntry, 0, len(aliases))
	for _, alias := range aliases {
		entries = append(entries, AliasEntry{Alias: alias, Canonical: f.Aliases[alias]})
	}
	return entries
}

// DecoderEntries returns the decoder rows sorted by key.
// Every unknown decoder name is reported in the joined error.
func (f *TableFile) DecoderEntries() ([]DecoderEntry, error) {
	keys := make([]string, 0, len(f.Decoders))
	for key := range f.Decoders {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]DecoderEntry, 0, len(keys))
	var errs []error
	for _, key := range keys {
		d, err := ParseDecoder(f.Decoders[key])
		if err != nil {
			errs = append(errs, fmt.Errorf("decoder for key %s: %w", key, err))
			continue
		}
		entries = append(entries, DecoderEntry{Key: key, Decoder: d})
	}
	return entries, errors.Join(errs...)
}

// LoadTableFile reads a TOML, YAML or JSON table file.
// The format comes from the extension, falling back to content detection.
func LoadTableFile(path string) (*TableFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTableFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat table file '%s': %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("table file '%s' is a directory", path)
	}
	if info.Size() > MaxTableFileSize {
		return nil, fmt.Errorf("table file '%s' exceeds maximum size %d bytes", path, MaxTableFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	tf, err := parseTableFile(data, format)
	if err != nil {
		return nil, fmt.Errorf("table file '%s': %w", path, err)
	}
	return tf, nil
}

// parseTableFile decodes data in the given format.
func parseTableFile(data []byte, format string) (*TableFile, error) {
	tf := &TableFile{}
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, tf); err != nil {
			return nil, fmt.Errorf("%w: failed to parse TOML: %w", ErrTableFormat, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(tf); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON: %w", ErrTableFormat, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, tf); err != nil {
			return nil, fmt.Errorf("%w: failed to parse YAML: %w", ErrTableFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unable to determine format", ErrTableFormat)
	}
	return tf, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// JSON first, since YAML accepts most JSON
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// TOML before YAML: plain "key = value" lines are valid YAML scalars
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
