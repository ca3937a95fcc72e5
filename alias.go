// FILE: lixenwraith/hhopts/alias.go
package hhopts

import "sort"

// AliasEntry maps one externally observed key spelling to its canonical key.
type AliasEntry struct {
	Alias     string `toml:"alias" yaml:"alias" json:"alias"`
	Canonical string `toml:"canonical" yaml:"canonical" json:"canonical"`
}

// AliasTable resolves alias keys to canonical keys.
// A table is immutable once constructed and safe for concurrent use without locking.
type AliasTable struct {
	byAlias map[string]string
}

// NewAliasTable builds a table from the given entries.
// Entries are applied in order, so a repeated alias keeps its last canonical key.
func NewAliasTable(entries []AliasEntry) *AliasTable {
	byAlias := make(map[string]string, len(entries))
	for _, e := range entries {
		byAlias[e.Alias] = e.Canonical
	}
	return &AliasTable{byAlias: byAlias}
}

// Canonicalize returns the canonical key for key.
// Keys with no alias entry are returned unchanged. No case folding or
// separator normalization is performed.
func (t *AliasTable) Canonicalize(key string) string {
	if t == nil {
		return key
	}
	if canonical, ok := t.byAlias[key]; ok {
		return canonical
	}
	return key
}

// Lookup reports the canonical key for alias and whether alias is in the table.
func (t *AliasTable) Lookup(alias string) (string, bool) {
	if t == nil {
		return "", false
	}
	canonical, ok := t.byAlias[alias]
	return canonical, ok
}

// AliasesOf returns every alias that resolves to canonical, sorted.
func (t *AliasTable) AliasesOf(canonical string) []string {
	if t == nil {
		return nil
	}
	var aliases []string
	for alias, c := range t.byAlias {
		if c == canonical {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// Entries returns a copy of the table contents sorted by alias.
func (t *AliasTable) Entries() []AliasEntry {
	if t == nil {
		return nil
	}
	entries := make([]AliasEntry, 0, len(t.byAlias))
	for alias, canonical := range t.byAlias {
		entries = append(entries, AliasEntry{Alias: alias, Canonical: canonical})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Alias < entries[j].Alias
	})
	return entries
}

// Len returns the number of aliases in the table.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byAlias)
}

// DefaultAliasEntries returns the built-in alias list.
// The returned slice is a fresh copy and may be modified by the caller.
func DefaultAliasEntries() []AliasEntry {
	entries := []AliasEntry{
		// Several spellings, none matching the canonical key
		{"hack.compiler.sourcemapping", KeyDisassemblerSourceMapping},
		{"eval.disassemblersourcemapping", KeyDisassemblerSourceMapping},

		// Underscores dropped
		{"hack.compiler.constantfolding", "hack.compiler.constant_folding"},
		{"hack.compiler.optimizenullcheck", "hack.compiler.optimize_null_checks"},

		// Underscores dropped and eval. prefix instead of hhvm.
		{"eval.createinoutwrapperfunctions", "hhvm.create_in_out_wrapper_functions"},
		{"eval.hackarrcompatnotices", "hhvm.hack_arr_compat_notices"},
		{"eval.hackarrdvarrs", "hhvm.hack_arr_dv_arrs"},
		{"eval.jitenablerenamefunction", "hhvm.jit_enable_rename_function"},
		{"eval.logexterncompilerperf", "hhvm.log_extern_compiler_perf"},
		{"eval.enableintrinsicsextension", "hhvm.enable_intrinsics_extension"},
		{"eval.reffinessinvariance", KeyReffinessInvariance},
		{"eval.enforcegenericsub", "hhvm.enforce_generics_ub"},

		// Missing hhvm. prefix
		{"hack.lang.disable_lval_as_an_expression", "hhvm.hack.lang.disable_lval_as_an_expression"},

		// Missing hhvm. prefix, underscores dropped
		{"hack.lang.phpism.disallowexecutionoperator", "hhvm.hack.lang.phpism.disallow_execution_operator"},
		{"hack.lang.phpism.disablenontopleveldeclarations", "hhvm.hack.lang.phpism.disable_nontoplevel_declarations"},
		{"hack.lang.phpism.disablestaticclosures", "hhvm.hack.lang.phpism.disable_static_closures"},
		{"hack.lang.phpism.disablehaltcompiler", "hhvm.hack.lang.phpism.disable_halt_compiler"},
		{"hack.lang.enablecoroutines", "hhvm.hack.lang.enable_coroutines"},
		{"hack.lang.enablepocketuniverses", "hhvm.hack.lang.enable_pocket_universes"},

		// Missing hack. between hhvm. and lang.
		{"hhvm.lang.enable_constant_visibility_modifiers", "hhvm.hack.lang.enable_constant_visibility_modifiers"},
		{"hhvm.lang.enable_class_level_where_clauses", "hhvm.hack.lang.enable_class_level_where_clauses"},
		{"hhvm.lang.disable_legacy_soft_typehints", "hhvm.hack.lang.disable_legacy_soft_typehints"},
		{"hhvm.lang.allow_new_attribute_syntax", "hhvm.hack.lang.allow_new_attribute_syntax"},
		{"hhvm.lang.disable_legacy_attribute_syntax", "hhvm.hack.lang.disable_legacy_attribute_syntax"},
		{"hhvm.lang.disallow_func_ptrs_in_constants", "hhvm.hack.lang.disallow_func_ptrs_in_constants"},

		// Missing hack. between hhvm. and lang., underscores dropped
		{"hhvm.lang.constdefaultfuncargs", "hhvm.hack.lang.const_default_func_args"},
		{"hhvm.lang.abstractstaticprops", "hhvm.hack.lang.abstract_static_props"},
		{"hhvm.lang.disableunsetclassconst", "hhvm.hack.lang.disable_unset_class_const"},
	}
	return entries
}
