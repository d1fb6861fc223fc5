package domain

import "path/filepath"

const (
	// DefaultOutputDir is the output directory used when none is configured.
	DefaultOutputDir = "output"

	// DefaultEmit is the target list used when none is configured.
	DefaultEmit = "abi,bytecode"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "kiln.yaml"

	// ModuleAstFileName is the module-level syntax tree artifact.
	ModuleAstFileName = "module.ast"

	// ModuleTokensFileName is the module-level token stream artifact.
	ModuleTokensFileName = "module.tokens"

	// YulIndentWidth is the number of spaces per nesting level in emitted Yul.
	YulIndentWidth = 4

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultTargets returns the target set used when none is configured.
func DefaultTargets() TargetSet {
	return NewTargetSet(ArtifactAbi, ArtifactBytecode)
}

// ModuleArtifactPath returns the path of a module-scoped artifact.
func ModuleArtifactPath(outDir string, kind ArtifactKind) string {
	switch kind {
	case ArtifactAst:
		return filepath.Join(outDir, ModuleAstFileName)
	case ArtifactTokens:
		return filepath.Join(outDir, ModuleTokensFileName)
	default:
		return ""
	}
}

// ContractDir returns the directory holding a contract's artifacts.
func ContractDir(outDir, contract string) string {
	return filepath.Join(outDir, contract)
}

// ContractArtifactPath returns the path of a contract-scoped artifact.
func ContractArtifactPath(outDir, contract string, kind ArtifactKind) string {
	var name string
	switch kind {
	case ArtifactAbi:
		name = contract + "_abi.json"
	case ArtifactYul:
		name = contract + "_ir.yul"
	case ArtifactBytecode:
		name = contract + ".bin"
	default:
		return ""
	}
	return filepath.Join(ContractDir(outDir, contract), name)
}
