package ports

// OutputGuard verifies that a destination directory may be written into and creates it.
//
//go:generate go run go.uber.org/mock/mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks
type OutputGuard interface {
	// Prepare fails with domain.ErrDestinationIsFile if dir is a file, and with
	// domain.ErrDestinationNotEmpty if dir has entries and overwrite is false.
	// Otherwise it creates dir and any missing ancestors.
	Prepare(dir string, overwrite bool) error
}

// ArtifactWriter persists one artifact body.
type ArtifactWriter interface {
	// Write replaces the file at path with body, creating parent directories as needed.
	// Failures are reported as domain.ErrIOFailure.
	Write(path string, body []byte) error
	// MakeDir creates dir and any missing ancestors. An existing directory is not an error.
	MakeDir(dir string) error
}

// IRFormatter pretty-prints an intermediate representation body.
type IRFormatter interface {
	Format(ir string) string
}
