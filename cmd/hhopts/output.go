// FILE: lixenwraith/hhopts/cmd/hhopts/output.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/hhopts"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatTOML = "toml"
	formatYAML = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatJSON, formatTOML, formatYAML:
		return true
	}
	return false
}

// assemble collects entries into a document keyed by canonical key.
// A repeated key keeps its last value.
func assemble(entries []hhopts.Entry, nested bool) map[string]any {
	doc := make(map[string]any, len(entries))
	for _, e := range entries {
		if nested {
			setNestedValue(doc, e.Key, e.Value.Any())
		} else {
			doc[e.Key] = e.Value.Any()
		}
	}
	return doc
}

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist.
// If a segment exists but is not a map, it will be overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = value
}

func writeDocument(w io.Writer, doc map[string]any, format string) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err

	case formatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal TOML: %w", err)
		}
		return nil

	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return encoder.Close()

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
