package domain_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestCompiledModule_Drain(t *testing.T) {
	m := &domain.CompiledModule{
		Contracts: map[string]domain.CompiledContract{
			"Token": {ABI: "[]"},
		},
	}

	first := m.Drain()
	assert.Len(t, first, 1)
	assert.Nil(t, m.Contracts)

	second := m.Drain()
	assert.Empty(t, second)
}

func TestCompiledContract_HasBytecode(t *testing.T) {
	assert.False(t, domain.CompiledContract{}.HasBytecode())
	assert.True(t, domain.CompiledContract{Bytecode: []byte{}}.HasBytecode())
	assert.True(t, domain.CompiledContract{Bytecode: []byte("6080")}.HasBytecode())
}

func TestArtifactPaths(t *testing.T) {
	out := filepath.Join("build", "out")

	assert.Equal(t, filepath.Join(out, "module.ast"), domain.ModuleArtifactPath(out, domain.ArtifactAst))
	assert.Equal(t, filepath.Join(out, "module.tokens"), domain.ModuleArtifactPath(out, domain.ArtifactTokens))
	assert.Empty(t, domain.ModuleArtifactPath(out, domain.ArtifactAbi))

	assert.Equal(t, filepath.Join(out, "Token"), domain.ContractDir(out, "Token"))
	assert.Equal(t,
		filepath.Join(out, "Token", "Token_abi.json"),
		domain.ContractArtifactPath(out, "Token", domain.ArtifactAbi))
	assert.Equal(t,
		filepath.Join(out, "Token", "Token_ir.yul"),
		domain.ContractArtifactPath(out, "Token", domain.ArtifactYul))
	assert.Equal(t,
		filepath.Join(out, "Token", "Token.bin"),
		domain.ContractArtifactPath(out, "Token", domain.ArtifactBytecode))
	assert.Empty(t, domain.ContractArtifactPath(out, "Token", domain.ArtifactAst))
}

func TestEmissionReport_Counts(t *testing.T) {
	r := &domain.EmissionReport{
		Artifacts: []domain.Artifact{
			{Kind: domain.ArtifactAbi, Status: domain.ArtifactWritten},
			{Kind: domain.ArtifactYul, Status: domain.ArtifactWritten},
			{Kind: domain.ArtifactBytecode, Status: domain.ArtifactSkipped},
		},
	}

	assert.Equal(t, 2, r.Written())
	assert.Equal(t, 1, r.Skipped())
}

// Duplicate contract names are outside the data model; the constraint lives on the
// type's documentation and is enforced by producers.
func TestCompiledModule_DocumentsNamePrecondition(t *testing.T) {
	file, err := parser.ParseFile(token.NewFileSet(), "module.go", nil, parser.ParseComments)
	require.NoError(t, err)

	var doc string
	ast.Inspect(file, func(n ast.Node) bool {
		decl, ok := n.(*ast.GenDecl)
		if !ok || decl.Tok != token.TYPE {
			return true
		}
		for _, spec := range decl.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name == "CompiledModule" {
				doc = decl.Doc.Text()
			}
		}
		return false
	})

	assert.Contains(t, doc, "Contract names must be unique")
	assert.Contains(t, doc, "usable as directory names")
}
