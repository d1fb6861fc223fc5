package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// ArtifactKind identifies one facet of a compiled module or contract that can be written to disk.
type ArtifactKind uint8

const (
	// ArtifactAbi is the JSON interface description of a contract.
	ArtifactAbi ArtifactKind = iota
	// ArtifactAst is the module's abstract syntax representation.
	ArtifactAst
	// ArtifactBytecode is a contract's binary payload.
	ArtifactBytecode
	// ArtifactTokens is the module's token stream.
	ArtifactTokens
	// ArtifactYul is a contract's intermediate representation.
	ArtifactYul

	artifactKindCount
)

var artifactKindNames = [artifactKindCount]string{
	ArtifactAbi:      "abi",
	ArtifactAst:      "ast",
	ArtifactBytecode: "bytecode",
	ArtifactTokens:   "tokens",
	ArtifactYul:      "yul",
}

// AllArtifactKinds returns every artifact kind in declaration order.
func AllArtifactKinds() []ArtifactKind {
	kinds := make([]ArtifactKind, 0, artifactKindCount)
	for k := range artifactKindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the target name used on the command line.
func (k ArtifactKind) String() string {
	if k >= artifactKindCount {
		return "unknown"
	}
	return artifactKindNames[k]
}

// ModuleScoped reports whether the kind is written once per module rather than once per contract.
func (k ArtifactKind) ModuleScoped() bool {
	return k == ArtifactAst || k == ArtifactTokens
}

// ParseArtifactKind maps a target name to its kind. Matching ignores case and surrounding space.
func ParseArtifactKind(name string) (ArtifactKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for k, n := range artifactKindNames {
		if n == normalized {
			return ArtifactKind(k), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownTarget, fmt.Sprintf("invalid emit target %q", name)), "target", name)
}
