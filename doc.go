// FILE: lixenwraith/hhopts/doc.go

// Package hhopts canonicalizes configuration keys supplied on a command line
// as KEY=VALUE entries and decodes their raw values into typed values.
//
// Features:
//   - Alias table mapping legacy key spellings to one canonical key
//   - Decoder table selecting a string, integer, CSV list or CSV key/value decoder per key
//   - Built-in tables plus optional TOML, YAML or JSON table files
//   - Immutable tables, safe for concurrent reads without locking
//   - Diagnostics for CSV key/value entries dropped for lacking ':'
//
// Quick Start:
//
//	r := hhopts.DefaultResolver()
//
//	entry, err := r.ResolveArg("hhvm.include_roots=/a:/x,/b:/y")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	roots, _ := entry.Value.Map() // {"/a": "/x", "/b": "/y"}
//
// Extending the tables:
//
//	r, err := hhopts.NewBuilder().
//	    WithTableFile("aliases.toml").
//	    WithAlias("eval.newflag", "hhvm.new_flag").
//	    WithDecoder("hhvm.new_flag", hhopts.DecodeInt).
//	    Build()
//
// Lookup misses are not errors: an unknown alias passes through unchanged and
// an unregistered key decodes as a string. Only the integer decoder fails,
// with an error wrapping ErrInvalidValue.
//
// The package does not validate values against a schema, merge sources or
// assemble the final configuration object; cmd/hhopts shows one way to do that.
package hhopts
