package domain

// ArtifactStatus records what happened to one requested artifact.
type ArtifactStatus string

const (
	// ArtifactWritten indicates the artifact body was persisted.
	ArtifactWritten ArtifactStatus = "written"
	// ArtifactSkipped indicates the artifact was requested but not available.
	ArtifactSkipped ArtifactStatus = "skipped"
)

// Artifact describes one emitted (or skipped) output file.
type Artifact struct {
	Kind ArtifactKind
	// Contract is empty for module-scoped artifacts.
	Contract string
	Path     string
	Size     int
	Status   ArtifactStatus
	// Reason explains a skip.
	Reason string
}

// EmissionReport lists the artifacts of one emission in the order they were handled.
type EmissionReport struct {
	OutputDir string
	Artifacts []Artifact
}

// Written returns the number of artifacts persisted.
func (r *EmissionReport) Written() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Status == ArtifactWritten {
			n++
		}
	}
	return n
}

// Skipped returns the number of requested artifacts that were not available.
func (r *EmissionReport) Skipped() int {
	return len(r.Artifacts) - r.Written()
}
