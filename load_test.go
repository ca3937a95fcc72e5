// FILE: lixenwraith/hhopts/load_test.go
package hhopts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlTables = `
[aliases]
"eval.newflag" = "hhvm.new_flag"
"eval.rootlist" = "hhvm.root_list"

[decoders]
"hhvm.new_flag" = "int"
"hhvm.root_list" = "csv"
`

const yamlTables = `
aliases:
  eval.newflag: hhvm.new_flag
  eval.rootlist: hhvm.root_list
decoders:
  hhvm.new_flag: int
  hhvm.root_list: csv
`

const jsonTables = `{
  "aliases": {"eval.newflag": "hhvm.new_flag", "eval.rootlist": "hhvm.root_list"},
  "decoders": {"hhvm.new_flag": "int", "hhvm.root_list": "csv"}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadTableFile tests each supported format, by extension and by content
func TestLoadTableFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"TOML", "tables.toml", tomlTables},
		{"YAML", "tables.yaml", yamlTables},
		{"YML", "tables.yml", yamlTables},
		{"JSON", "tables.json", jsonTables},
		{"DetectTOML", "tables-toml.conf", tomlTables},
		{"DetectYAML", "tables-yaml.conf", yamlTables},
		{"DetectJSON", "tables-json.conf", jsonTables},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, tt.file, tt.content)

			tf, err := LoadTableFile(path)
			require.NoError(t, err)

			assert.Equal(t, []AliasEntry{
				{Alias: "eval.newflag", Canonical: "hhvm.new_flag"},
				{Alias: "eval.rootlist", Canonical: "hhvm.root_list"},
			}, tf.AliasEntries())

			decoders, err := tf.DecoderEntries()
			require.NoError(t, err)
			assert.Equal(t, []DecoderEntry{
				{Key: "hhvm.new_flag", Decoder: DecodeInt},
				{Key: "hhvm.root_list", Decoder: DecodeCSVStrings},
			}, decoders)
		})
	}
}

func TestLoadTableFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("NotFound", func(t *testing.T) {
		_, err := LoadTableFile(filepath.Join(tmpDir, "missing.toml"))
		assert.ErrorIs(t, err, ErrTableFileNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := LoadTableFile(tmpDir)
		assert.Error(t, err)
	})

	t.Run("InvalidTOML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "bad.toml", `[aliases`)
		_, err := LoadTableFile(path)
		assert.ErrorIs(t, err, ErrTableFormat)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("UnknownJSONField", func(t *testing.T) {
		path := writeFile(t, tmpDir, "extra.json", `{"alias": {}}`)
		_, err := LoadTableFile(path)
		assert.ErrorIs(t, err, ErrTableFormat)
	})

	t.Run("UndetectableFormat", func(t *testing.T) {
		path := writeFile(t, tmpDir, "garbage.conf", "{[:")
		_, err := LoadTableFile(path)
		assert.ErrorIs(t, err, ErrTableFormat)
	})

	t.Run("UnknownDecoder", func(t *testing.T) {
		path := writeFile(t, tmpDir, "unknown.toml", "[decoders]\n\"a\" = \"float\"\n\"b\" = \"bool\"\n\"c\" = \"int\"\n")
		tf, err := LoadTableFile(path)
		require.NoError(t, err)

		entries, err := tf.DecoderEntries()
		assert.ErrorIs(t, err, ErrUnknownDecoder)
		assert.Contains(t, err.Error(), "decoder for key a")
		assert.Contains(t, err.Error(), "decoder for key b")
		assert.Equal(t, []DecoderEntry{{Key: "c", Decoder: DecodeInt}}, entries)
	})
}
