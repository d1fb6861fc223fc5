package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrUnknownTarget is returned when a requested target name does not map to an artifact kind.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrDestinationIsFile is returned when the output path exists and is not a directory.
	ErrDestinationIsFile = zerr.New("output path is a file")

	// ErrDestinationNotEmpty is returned when the output directory already has entries and overwrite is off.
	ErrDestinationNotEmpty = zerr.New("output directory is not empty, use --overwrite to write into it")

	// ErrIOFailure is returned when reading or writing the output tree fails.
	ErrIOFailure = zerr.New("i/o failure")

	// ErrCompilationFailed is returned when the compiler reports diagnostics for the source module.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrEmissionFailed is returned when artifact emission aborts.
	ErrEmissionFailed = zerr.New("unable to write output to directory")

	// ErrNoSourceSpecified is returned when the build command is invoked without a source path.
	ErrNoSourceSpecified = zerr.New("no source file specified")

	// ErrSourceReadFailed is returned when the source module cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrUnsupportedBundle is returned when the source file extension has no known bundle decoder.
	ErrUnsupportedBundle = zerr.New("unsupported module bundle format")

	// ErrDuplicateContract is returned when a module bundle declares the same contract name twice.
	ErrDuplicateContract = zerr.New("duplicate contract name")

	// ErrInvalidContractName is returned when a contract name cannot be used as a directory name.
	ErrInvalidContractName = zerr.New("invalid contract name")

	// ErrInvalidBytecode is returned when a contract's bytecode payload is not valid hex.
	ErrInvalidBytecode = zerr.New("invalid bytecode encoding")

	// ErrConfigReadFailed is returned when the project config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)

// IOError reports a failed filesystem operation on the output tree.
// It matches both ErrIOFailure and the underlying cause under errors.Is.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError wraps err as an IOError for path and attaches the path as metadata.
func NewIOError(op, path string, err error) error {
	return zerr.With(&IOError{Op: op, Path: path, Err: err}, "path", path)
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrIOFailure.Error(), e.Op, e.Path, e.Err)
}

// Unwrap exposes both the failure class and the cause.
func (e *IOError) Unwrap() []error {
	return []error{ErrIOFailure, e.Err}
}
