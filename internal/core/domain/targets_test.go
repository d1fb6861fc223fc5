package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseArtifactKind(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ArtifactKind
	}{
		{"abi", domain.ArtifactAbi},
		{"ast", domain.ArtifactAst},
		{"bytecode", domain.ArtifactBytecode},
		{"tokens", domain.ArtifactTokens},
		{"yul", domain.ArtifactYul},
		{"YUL", domain.ArtifactYul},
		{" abi ", domain.ArtifactAbi},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := domain.ParseArtifactKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestArtifactKind_String(t *testing.T) {
	for _, k := range domain.AllArtifactKinds() {
		parsed, err := domain.ParseArtifactKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "unknown", domain.ArtifactKind(200).String())
}

func TestArtifactKind_ModuleScoped(t *testing.T) {
	assert.True(t, domain.ArtifactAst.ModuleScoped())
	assert.True(t, domain.ArtifactTokens.ModuleScoped())
	assert.False(t, domain.ArtifactAbi.ModuleScoped())
	assert.False(t, domain.ArtifactYul.ModuleScoped())
	assert.False(t, domain.ArtifactBytecode.ModuleScoped())
}

func TestParseTargets_Duplicates(t *testing.T) {
	once, err := domain.ParseTargets([]string{"abi"})
	require.NoError(t, err)

	twice, err := domain.ParseTargets([]string{"abi", "abi"})
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, []domain.ArtifactKind{domain.ArtifactAbi}, twice.Kinds())
}

func TestParseTargets_OrderIrrelevant(t *testing.T) {
	a, err := domain.ParseTargets([]string{"yul", "abi", "tokens"})
	require.NoError(t, err)
	b, err := domain.ParseTargets([]string{"tokens", "yul", "abi", "yul"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "abi,tokens,yul", a.String())
}

func TestParseTargets_UnknownTarget(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		bad   string
	}{
		{"only unknown", []string{"wasm"}, "wasm"},
		{"unknown after valid", []string{"abi", "yul", "llvm"}, "llvm"},
		{"empty element", []string{"abi", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := domain.ParseTargets(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnknownTarget))
			assert.True(t, set.Empty(), "construction must not partially succeed")

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, tt.bad, zErr.Metadata()["target"])
			assert.Contains(t, err.Error(), "\""+tt.bad+"\"")
		})
	}
}

func TestTargetSet_Contains(t *testing.T) {
	set := domain.NewTargetSet(domain.ArtifactAbi, domain.ArtifactYul)

	assert.True(t, set.Contains(domain.ArtifactAbi))
	assert.True(t, set.Contains(domain.ArtifactYul))
	assert.False(t, set.Contains(domain.ArtifactAst))
	assert.False(t, set.Contains(domain.ArtifactBytecode))
	assert.False(t, set.Contains(domain.ArtifactTokens))
	assert.False(t, set.Contains(domain.ArtifactKind(200)))
}

func TestTargetSet_Empty(t *testing.T) {
	var set domain.TargetSet
	assert.True(t, set.Empty())
	assert.Empty(t, set.Kinds())
	assert.Equal(t, "", set.String())

	assert.False(t, domain.DefaultTargets().Empty())
}

func TestDefaultTargets(t *testing.T) {
	parsed, err := domain.ParseTargets(domain.SplitTargetList(domain.DefaultEmit))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTargets(), parsed)
}

func TestSplitTargetList(t *testing.T) {
	assert.Nil(t, domain.SplitTargetList(""))
	assert.Nil(t, domain.SplitTargetList("   "))
	assert.Equal(t, []string{"abi", "yul"}, domain.SplitTargetList("abi,yul"))
	assert.Equal(t, []string{"abi", "", "yul"}, domain.SplitTargetList("abi,,yul"))

	_, err := domain.ParseTargets(domain.SplitTargetList("abi,,yul"))
	assert.True(t, errors.Is(err, domain.ErrUnknownTarget))
}
