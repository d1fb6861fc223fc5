// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// CompileOptions carries the switches the compiler frontend honours.
type CompileOptions struct {
	// GenerateBytecode asks for binary payloads on each contract.
	GenerateBytecode bool
	// Optimize enables the backend optimizer.
	Optimize bool
}

// Compiler defines the interface to the compiler frontend that produces a compiled module.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile turns the source at path into a compiled module.
	// Diagnostics are reported as domain.ErrCompilationFailed.
	Compile(ctx context.Context, path string, opts CompileOptions) (*domain.CompiledModule, error)
}
