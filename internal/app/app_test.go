package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/adapters/yul"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/emitter"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockConfigLoader
	compiler  *mocks.MockCompiler
	reporter  *mocks.MockReporter
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
	trace     io.Writer
}

func newFixture(t *testing.T, backend bool) (*fixture, *app.App) {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		compiler:  mocks.NewMockCompiler(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
	}

	emit := emitter.New(
		fs.NewGuard(),
		fs.NewWriter(),
		yul.NewFormatter(),
		telemetry.NewNoOp(),
		emitter.WithBytecodeBackend(backend),
	)

	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(telemetry.NewNoOp().Record).
		AnyTimes()

	newTelemetry := func(w io.Writer) ports.Telemetry {
		f.trace = w
		return f.telemetry
	}

	return f, app.New(f.loader, f.compiler, emit, f.reporter, f.logger, newTelemetry)
}

func tokenModule() *domain.CompiledModule {
	return &domain.CompiledModule{
		Ast:    "(module)",
		Tokens: "tokens",
		Contracts: map[string]domain.CompiledContract{
			"Token": {ABI: "[]", Yul: `object "Token" {}`, Bytecode: []byte("6080")},
		},
	}
}

func TestApp_Build(t *testing.T) {
	f, a := newFixture(t, true)
	out := filepath.Join(t.TempDir(), "out")

	f.loader.EXPECT().Load(domain.ConfigFileName).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().
		Compile(gomock.Any(), "token.yaml", ports.CompileOptions{}).
		Return(tokenModule(), nil)
	f.reporter.EXPECT().Report(gomock.Any()).Do(func(r *domain.EmissionReport) {
		assert.Equal(t, out, r.OutputDir)
		assert.Equal(t, 2, r.Written())
	})
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{
		OutputDir: out,
		Emit:      []string{"abi", "yul"},
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "Token", "Token_abi.json"))
	assert.FileExists(t, filepath.Join(out, "Token", "Token_ir.yul"))
	assert.NoFileExists(t, filepath.Join(out, "Token", "Token.bin"))
}

func TestApp_Build_NoSource(t *testing.T) {
	f, a := newFixture(t, true)
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "", app.BuildOptions{})
	assert.True(t, errors.Is(err, domain.ErrNoSourceSpecified))
}

func TestApp_Build_ConfigLoaderError(t *testing.T) {
	f, a := newFixture(t, true)
	f.loader.EXPECT().Load("custom.yaml").Return(nil, domain.ErrConfigParseFailed)
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{ConfigPath: "custom.yaml"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Build_UnknownTarget(t *testing.T) {
	f, a := newFixture(t, true)
	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{Emit: []string{"abi", "wasm"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownTarget))
	assert.Contains(t, err.Error(), `"wasm"`)
}

func TestApp_Build_CompilationFailed(t *testing.T) {
	f, a := newFixture(t, true)
	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), "broken.yaml", gomock.Any()).
		Return(nil, domain.ErrCompilationFailed)
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "broken.yaml", app.BuildOptions{OutputDir: t.TempDir()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))
	assert.Contains(t, err.Error(), "unable to compile broken.yaml")
}

func TestApp_Build_EmissionFailed(t *testing.T) {
	f, a := newFixture(t, true)
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(out, nil, 0o600))

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenModule(), nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{OutputDir: out})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmissionFailed))
	assert.True(t, errors.Is(err, domain.ErrDestinationIsFile))
}

func TestApp_Build_TelemetryCloseError(t *testing.T) {
	f, a := newFixture(t, true)
	closeErr := errors.New("tape closed")

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenModule(), nil)
	f.reporter.EXPECT().Report(gomock.Any())
	f.telemetry.EXPECT().Close().Return(closeErr)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{OutputDir: t.TempDir()})
	assert.ErrorIs(t, err, closeErr)
}

func TestApp_Build_BytecodeAdvisory(t *testing.T) {
	f, a := newFixture(t, false)
	out := filepath.Join(t.TempDir(), "out")

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.True(t, strings.Contains(msg, "bytecode"))
	}).Times(1)
	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), ports.CompileOptions{GenerateBytecode: false}).
		Return(tokenModule(), nil)
	f.reporter.EXPECT().Report(gomock.Any()).Do(func(r *domain.EmissionReport) {
		assert.Equal(t, 1, r.Written())
		assert.Equal(t, 1, r.Skipped())
	})
	f.telemetry.EXPECT().Close().Return(nil)

	// Default targets are abi,bytecode.
	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{OutputDir: out})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "Token", "Token_abi.json"))
	assert.NoFileExists(t, filepath.Join(out, "Token", "Token.bin"))
}

func TestApp_Build_BytecodeBackend(t *testing.T) {
	f, a := newFixture(t, true)
	out := filepath.Join(t.TempDir(), "out")

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), ports.CompileOptions{GenerateBytecode: true}).
		Return(tokenModule(), nil)
	f.reporter.EXPECT().Report(gomock.Any())
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{OutputDir: out})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(out, "Token", "Token.bin")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "6080", string(content))
}

func TestApp_Build_OptimizeIndependentOfOverwrite(t *testing.T) {
	f, a := newFixture(t, true)
	yes := true

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), ports.CompileOptions{Optimize: false}).
		Return(tokenModule(), nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{
		OutputDir: t.TempDir(),
		Emit:      []string{"abi"},
		Overwrite: &yes,
		Quiet:     true,
	})
	require.NoError(t, err)
}

func TestApp_Build_Quiet(t *testing.T) {
	f, a := newFixture(t, true)

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenModule(), nil)
	f.telemetry.EXPECT().Close().Return(nil)
	// No reporter expectation: Report must not be called.

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{OutputDir: t.TempDir(), Quiet: true})
	require.NoError(t, err)
}

func TestApp_Build_ClosesTelemetryOnEarlyError(t *testing.T) {
	f, a := newFixture(t, true)
	closeErr := errors.New("tape closed")

	f.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigReadFailed)
	f.telemetry.EXPECT().Close().Return(closeErr)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{})

	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	assert.ErrorIs(t, err, closeErr)
}

func TestApp_Build_TraceWriterReachesTelemetry(t *testing.T) {
	f, a := newFixture(t, true)
	var trace bytes.Buffer

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenModule(), nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{
		OutputDir: t.TempDir(),
		Emit:      []string{"abi"},
		Quiet:     true,
		Trace:     &trace,
	})
	require.NoError(t, err)
	assert.Same(t, &trace, f.trace)
}

func TestApp_Build_VerboseTrace(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	compiler := mocks.NewMockCompiler(ctrl)

	loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenModule(), nil)

	emit := emitter.New(fs.NewGuard(), fs.NewWriter(), yul.NewFormatter(), telemetry.NewNoOp(),
		emitter.WithBytecodeBackend(true))
	a := app.New(loader, compiler, emit, mocks.NewMockReporter(ctrl), mocks.NewMockLogger(ctrl),
		func(w io.Writer) ports.Telemetry { return progrock.New(w) })

	var trace bytes.Buffer
	err := a.Build(context.Background(), "token.yaml", app.BuildOptions{
		OutputDir: t.TempDir(),
		Emit:      []string{"abi", "bytecode"},
		Quiet:     true,
		Trace:     &trace,
	})
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"✓ emit Token/Token_abi.json",
		"    [INFO] wrote 2 bytes",
		"✓ emit Token/Token.bin",
		"    [INFO] wrote 4 bytes",
		"",
	}, "\n"), trace.String())
}

func TestResolveSettings(t *testing.T) {
	yes, no := true, false
	yul := domain.NewTargetSet(domain.ArtifactYul)

	cfg := &domain.ProjectConfig{
		OutputDir: "from-config",
		Targets:   &yul,
		Overwrite: &yes,
		Optimize:  &yes,
	}

	tests := []struct {
		name     string
		cfg      *domain.ProjectConfig
		opts     app.BuildOptions
		expected domain.BuildSettings
	}{
		{
			name:     "defaults",
			cfg:      &domain.ProjectConfig{},
			expected: domain.DefaultBuildSettings(),
		},
		{
			name: "config over defaults",
			cfg:  cfg,
			expected: domain.BuildSettings{
				OutputDir: "from-config",
				Targets:   yul,
				Overwrite: true,
				Optimize:  true,
			},
		},
		{
			name: "flags over config",
			cfg:  cfg,
			opts: app.BuildOptions{
				OutputDir: "from-flag",
				Emit:      []string{"ast"},
				Overwrite: &no,
				Optimize:  &no,
			},
			expected: domain.BuildSettings{
				OutputDir: "from-flag",
				Targets:   domain.NewTargetSet(domain.ArtifactAst),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.ResolveSettings(tt.cfg, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
