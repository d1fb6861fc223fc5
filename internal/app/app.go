// Package app implements the application layer for kiln.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/emitter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	compiler     ports.Compiler
	emitter      *emitter.Emitter
	reporter     ports.Reporter
	logger       ports.Logger
	newTelemetry ports.TelemetryFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	compiler ports.Compiler,
	emit *emitter.Emitter,
	reporter ports.Reporter,
	log ports.Logger,
	newTelemetry ports.TelemetryFactory,
) *App {
	return &App{
		configLoader: loader,
		compiler:     compiler,
		emitter:      emit,
		reporter:     reporter,
		logger:       log,
		newTelemetry: newTelemetry,
	}
}

// BuildOptions holds the command line overrides of one build.
// Zero values (empty strings, nil slices and pointers) leave the configured value in place.
type BuildOptions struct {
	ConfigPath string
	OutputDir  string
	Emit       []string
	Overwrite  *bool
	Optimize   *bool
	Quiet      bool
	// Trace receives every recorded artifact write when set.
	Trace io.Writer
}

// Build compiles source and emits the requested artifacts.
func (a *App) Build(ctx context.Context, source string, opts BuildOptions) (err error) {
	telemetry := a.newTelemetry(opts.Trace)
	defer func() {
		err = errors.Join(err, telemetry.Close())
	}()

	if source == "" {
		return domain.ErrNoSourceSpecified
	}

	// 1. Resolve settings
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.ConfigFileName
	}
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	settings, err := ResolveSettings(cfg, opts)
	if err != nil {
		return err
	}

	wantBytecode := settings.Targets.Contains(domain.ArtifactBytecode)
	if wantBytecode && !a.emitter.BytecodeBackend() {
		a.logger.Warn("bytecode output requested, but this build has no bytecode backend; .bin files will not be written")
	}

	// 2. Compile
	module, err := a.compiler.Compile(ctx, source, ports.CompileOptions{
		GenerateBytecode: wantBytecode && a.emitter.BytecodeBackend(),
		Optimize:         settings.Optimize,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, fmt.Sprintf("unable to compile %s", source)), "source", source)
	}

	// 3. Emit
	report, err := a.emitter.WithTelemetry(telemetry).Emit(ctx, module, emitter.Request{
		Targets:   settings.Targets,
		OutputDir: settings.OutputDir,
		Overwrite: settings.Overwrite,
	})
	if err != nil {
		return errors.Join(domain.ErrEmissionFailed, err)
	}

	if !opts.Quiet {
		a.reporter.Report(report)
	}
	return nil
}

// ResolveSettings layers the command line overrides over cfg over the built-in defaults.
func ResolveSettings(cfg *domain.ProjectConfig, opts BuildOptions) (domain.BuildSettings, error) {
	settings := domain.DefaultBuildSettings().ApplyConfig(cfg)

	if opts.OutputDir != "" {
		settings.OutputDir = opts.OutputDir
	}
	if opts.Emit != nil {
		targets, err := domain.ParseTargets(opts.Emit)
		if err != nil {
			return domain.BuildSettings{}, err
		}
		settings.Targets = targets
	}
	if opts.Overwrite != nil {
		settings.Overwrite = *opts.Overwrite
	}
	if opts.Optimize != nil {
		settings.Optimize = *opts.Optimize
	}
	return settings, nil
}
