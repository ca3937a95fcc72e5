// FILE: lixenwraith/hhopts/key.go
package hhopts

// Canonical keys bound to a non-default decoder.
const (
	KeyDynamicInvokeFunctions = "hhvm.dynamic_invoke_functions"
	KeyIncludeRoots           = "hhvm.include_roots"
	KeyReffinessInvariance    = "hhvm.reffiness_invariance"
)

// Canonical keys targeted by more than one alias.
const (
	KeyDisassemblerSourceMapping = "eval.disassembler_source_mapping"
)
