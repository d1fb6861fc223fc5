//go:build !solc

package domain

// BytecodeBackendEnabled reports whether this binary was built with the bytecode backend.
// Rebuild with -tags solc to enable it.
const BytecodeBackendEnabled = false
