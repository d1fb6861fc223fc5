// Package build holds build-time information.
package build

// These default to placeholder values and can be overwritten by linker flags:
//
//	-ldflags "-X go.trai.ch/kiln/internal/build.Version=v1.2.3"
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
