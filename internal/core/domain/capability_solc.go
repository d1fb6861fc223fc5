//go:build solc

package domain

// BytecodeBackendEnabled reports whether this binary was built with the bytecode backend.
const BytecodeBackendEnabled = true
