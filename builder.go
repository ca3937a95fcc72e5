// FILE: lixenwraith/hhopts/builder.go
package hhopts

import "fmt"

// Builder provides a fluent interface for building a Resolver.
// Rows are applied in order: built-in defaults, table files, then explicit rows,
// so later rows overwrite earlier ones for the same key.
type Builder struct {
	useDefaults bool
	tableFiles  []string
	aliases     []AliasEntry
	decoders    []DecoderEntry
}

// NewBuilder creates a builder seeded with the built-in tables.
func NewBuilder() *Builder {
	return &Builder{useDefaults: true}
}

// WithoutDefaults drops the built-in alias and decoder rows.
func (b *Builder) WithoutDefaults() *Builder {
	b.useDefaults = false
	return b
}

// WithTableFile adds a TOML, YAML or JSON table file to load at Build.
func (b *Builder) WithTableFile(path string) *Builder {
	if path != "" {
		b.tableFiles = append(b.tableFiles, path)
	}
	return b
}

// WithAliases adds alias rows.
func (b *Builder) WithAliases(entries ...AliasEntry) *Builder {
	b.aliases = append(b.aliases, entries...)
	return b
}

// WithAlias adds a single alias row.
func (b *Builder) WithAlias(alias, canonical string) *Builder {
	return b.WithAliases(AliasEntry{Alias: alias, Canonical: canonical})
}

// WithDecoders adds decoder rows.
func (b *Builder) WithDecoders(entries ...DecoderEntry) *Builder {
	b.decoders = append(b.decoders, entries...)
	return b
}

// WithDecoder binds a single canonical key to a decoder.
func (b *Builder) WithDecoder(key string, d Decoder) *Builder {
	return b.WithDecoders(DecoderEntry{Key: key, Decoder: d})
}

// Build loads table files and freezes all rows into a Resolver.
// The builder may be reused; later changes do not affect built resolvers.
func (b *Builder) Build() (*Resolver, error) {
	var aliases []AliasEntry
	var decoders []DecoderEntry

	if b.useDefaults {
		aliases = append(aliases, DefaultAliasEntries()...)
		decoders = append(decoders, DefaultDecoderEntries()...)
	}

	for _, path := range b.tableFiles {
		tf, err := LoadTableFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load tables: %w", err)
		}
		fileDecoders, err := tf.DecoderEntries()
		if err != nil {
			return nil, fmt.Errorf("failed to load tables from '%s': %w", path, err)
		}
		aliases = append(aliases, tf.AliasEntries()...)
		decoders = append(decoders, fileDecoders...)
	}

	aliases = append(aliases, b.aliases...)
	decoders = append(decoders, b.decoders...)

	return NewResolver(NewAliasTable(aliases), NewDecoderTable(decoders)), nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Resolver {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("resolver build failed: %v", err))
	}
	return r
}
