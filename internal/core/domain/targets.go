package domain

import "strings"

// TargetSet is an immutable set of requested artifact kinds.
// The zero value is the empty set.
type TargetSet uint8

// NewTargetSet builds a set from already-validated kinds.
func NewTargetSet(kinds ...ArtifactKind) TargetSet {
	var s TargetSet
	for _, k := range kinds {
		if k < artifactKindCount {
			s |= 1 << k
		}
	}
	return s
}

// ParseTargets validates user-supplied target names and collapses duplicates.
// It fails on the first unknown name and never returns a partial set.
func ParseTargets(names []string) (TargetSet, error) {
	var s TargetSet
	for _, name := range names {
		k, err := ParseArtifactKind(name)
		if err != nil {
			return 0, err
		}
		s |= 1 << k
	}
	return s, nil
}

// SplitTargetList splits the comma-separated command line form of a target list.
// Empty elements are kept so that validation can reject them.
func SplitTargetList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return strings.Split(list, ",")
}

// Contains reports whether kind was requested.
func (s TargetSet) Contains(kind ArtifactKind) bool {
	return kind < artifactKindCount && s&(1<<kind) != 0
}

// Empty reports whether no kind was requested.
func (s TargetSet) Empty() bool {
	return s == 0
}

// Kinds returns the members of the set in declaration order.
func (s TargetSet) Kinds() []ArtifactKind {
	var kinds []ArtifactKind
	for _, k := range AllArtifactKinds() {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String renders the set in the comma-separated command line form.
func (s TargetSet) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}
