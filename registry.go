// FILE: lixenwraith/hhopts/registry.go
package hhopts

import "sort"

// DecoderEntry binds a canonical key to a decoder.
type DecoderEntry struct {
	Key     string
	Decoder Decoder
}

// DecoderTable selects the decoder for a canonical key.
// A table is immutable once constructed and safe for concurrent use without locking.
type DecoderTable struct {
	byKey map[string]Decoder
}

// NewDecoderTable builds a table from the given entries.
// A repeated key keeps its last decoder.
func NewDecoderTable(entries []DecoderEntry) *DecoderTable {
	byKey := make(map[string]Decoder, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e.Decoder
	}
	return &DecoderTable{byKey: byKey}
}

// DecoderFor returns the decoder bound to key, or DecodeString if none is.
func (t *DecoderTable) DecoderFor(key string) Decoder {
	d, _ := t.Lookup(key)
	return d
}

// Lookup returns the decoder bound to key and whether one was registered.
// An unregistered key yields DecodeString.
func (t *DecoderTable) Lookup(key string) (Decoder, bool) {
	if t == nil {
		return DecodeString, false
	}
	if d, ok := t.byKey[key]; ok {
		return d, true
	}
	return DecodeString, false
}

// Entries returns a copy of the table contents sorted by key.
func (t *DecoderTable) Entries() []DecoderEntry {
	if t == nil {
		return nil
	}
	entries := make([]DecoderEntry, 0, len(t.byKey))
	for key, d := range t.byKey {
		entries = append(entries, DecoderEntry{Key: key, Decoder: d})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Len returns the number of registered keys.
func (t *DecoderTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byKey)
}

// DefaultDecoderEntries returns the built-in decoder bindings as a fresh slice.
func DefaultDecoderEntries() []DecoderEntry {
	return []DecoderEntry{
		{Key: KeyDynamicInvokeFunctions, Decoder: DecodeCSVStrings},
		{Key: KeyIncludeRoots, Decoder: DecodeCSVKeyValue},
		{Key: KeyReffinessInvariance, Decoder: DecodeInt},
	}
}
