// FILE: lixenwraith/hhopts/resolver.go
package hhopts

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one resolved command-line configuration entry.
type Entry struct {
	// RawKey is the key as supplied by the caller
	RawKey string
	// Key is the canonical key
	Key     string
	Decoder Decoder
	Value   Value
	// Dropped holds CSV key/value entries skipped for lacking ':'
	Dropped []string
}

// Aliased reports whether the key was rewritten by the alias table.
func (e Entry) Aliased() bool {
	return e.RawKey != e.Key
}

// Resolver canonicalizes keys and decodes values using an alias table and a
// decoder table. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	aliases  *AliasTable
	decoders *DecoderTable
}

// NewResolver returns a resolver over the given tables. A nil table behaves as empty.
func NewResolver(aliases *AliasTable, decoders *DecoderTable) *Resolver {
	if aliases == nil {
		aliases = NewAliasTable(nil)
	}
	if decoders == nil {
		decoders = NewDecoderTable(nil)
	}
	return &Resolver{aliases: aliases, decoders: decoders}
}

// DefaultResolver returns a resolver over the built-in tables.
func DefaultResolver() *Resolver {
	return NewResolver(
		NewAliasTable(DefaultAliasEntries()),
		NewDecoderTable(DefaultDecoderEntries()),
	)
}

// Aliases returns the alias table.
func (r *Resolver) Aliases() *AliasTable {
	return r.aliases
}

// Decoders returns the decoder table.
func (r *Resolver) Decoders() *DecoderTable {
	return r.decoders
}

// Canonicalize returns the canonical spelling of key.
func (r *Resolver) Canonicalize(key string) string {
	return r.aliases.Canonicalize(key)
}

// DecoderFor returns the decoder for key after canonicalization.
func (r *Resolver) DecoderFor(key string) Decoder {
	return r.decoders.DecoderFor(r.Canonicalize(key))
}

// Resolve canonicalizes key and decodes raw with the decoder bound to the
// canonical key. On failure the returned Entry still carries the keys and decoder.
func (r *Resolver) Resolve(key, raw string) (Entry, error) {
	canonical := r.Canonicalize(key)
	d := r.decoders.DecoderFor(canonical)

	entry := Entry{RawKey: key, Key: canonical, Decoder: d}
	res, err := d.DecodeDetailed(raw)
	if err != nil {
		return entry, fmt.Errorf("invalid value for key %s: %w", canonical, err)
	}
	entry.Value = res.Value
	entry.Dropped = res.Dropped
	return entry, nil
}

// ResolveArg resolves a single KEY=VALUE entry.
func (r *Resolver) ResolveArg(arg string) (Entry, error) {
	key, raw, err := SplitAssignment(arg)
	if err != nil {
		return Entry{}, err
	}
	return r.Resolve(key, raw)
}

// ResolveArgs resolves every KEY=VALUE entry in args.
// Entries that fail are left out of the result; their errors are joined.
func (r *Resolver) ResolveArgs(args []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(args))
	var errs []error
	for _, arg := range args {
		entry, err := r.ResolveArg(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, errors.Join(errs...)
}

// SplitAssignment splits "KEY=VALUE" at the first '='.
// The value may be empty or contain further '=' characters; the key may not be empty.
func SplitAssignment(arg string) (key, value string, err error) {
	key, value, found := strings.Cut(arg, "=")
	if !found || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedArg, arg)
	}
	return key, value, nil
}
