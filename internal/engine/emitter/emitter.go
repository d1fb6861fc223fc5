// Package emitter writes the requested artifacts of a compiled module into an output directory.
package emitter

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Request describes one emission.
type Request struct {
	Targets   domain.TargetSet
	OutputDir string
	Overwrite bool
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithBytecodeBackend overrides whether the bytecode backend is available.
func WithBytecodeBackend(enabled bool) Option {
	return func(e *Emitter) {
		e.bytecodeBackend = enabled
	}
}

// Emitter materializes the artifact kinds of a TargetSet for a compiled module.
type Emitter struct {
	guard     ports.OutputGuard
	writer    ports.ArtifactWriter
	formatter ports.IRFormatter
	telemetry ports.Telemetry

	bytecodeBackend bool
}

// New creates a new Emitter. The bytecode backend defaults to domain.BytecodeBackendEnabled.
func New(
	guard ports.OutputGuard,
	writer ports.ArtifactWriter,
	formatter ports.IRFormatter,
	telemetry ports.Telemetry,
	opts ...Option,
) *Emitter {
	e := &Emitter{
		guard:           guard,
		writer:          writer,
		formatter:       formatter,
		telemetry:       telemetry,
		bytecodeBackend: domain.BytecodeBackendEnabled,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithTelemetry returns a copy of e that records its writes on telemetry.
func (e *Emitter) WithTelemetry(telemetry ports.Telemetry) *Emitter {
	c := *e
	c.telemetry = telemetry
	return &c
}

// BytecodeBackend reports whether .bin artifacts can be produced.
func (e *Emitter) BytecodeBackend() bool {
	return e.bytecodeBackend
}

// Emit validates req.OutputDir and writes every requested artifact of module into it.
// The module's contracts are drained. The first failure aborts the emission; artifacts
// written before it stay on disk.
//
// Emit takes no lock on the output directory. Callers must not run two emissions
// against the same directory at once.
func (e *Emitter) Emit(ctx context.Context, module *domain.CompiledModule, req Request) (*domain.EmissionReport, error) {
	if err := e.guard.Prepare(req.OutputDir, req.Overwrite); err != nil {
		return nil, err
	}

	run := &emission{
		Emitter: e,
		req:     req,
		report:  &domain.EmissionReport{OutputDir: req.OutputDir},
	}

	if err := run.emitModule(ctx, module); err != nil {
		return nil, err
	}

	contracts := module.Drain()
	for _, name := range slices.Sorted(maps.Keys(contracts)) {
		if err := run.emitContract(ctx, name, contracts[name]); err != nil {
			return nil, err
		}
	}

	return run.report, nil
}

type emission struct {
	*Emitter
	req    Request
	report *domain.EmissionReport
}

func (r *emission) emitModule(ctx context.Context, module *domain.CompiledModule) error {
	if r.req.Targets.Contains(domain.ArtifactAst) {
		if err := r.write(ctx, domain.ArtifactAst, "", []byte(module.Ast)); err != nil {
			return err
		}
	}
	if r.req.Targets.Contains(domain.ArtifactTokens) {
		if err := r.write(ctx, domain.ArtifactTokens, "", []byte(module.Tokens)); err != nil {
			return err
		}
	}
	return nil
}

func (r *emission) emitContract(ctx context.Context, name string, contract domain.CompiledContract) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.writer.MakeDir(domain.ContractDir(r.req.OutputDir, name)); err != nil {
		return err
	}

	if r.req.Targets.Contains(domain.ArtifactAbi) {
		if err := r.write(ctx, domain.ArtifactAbi, name, []byte(contract.ABI)); err != nil {
			return err
		}
	}

	if r.req.Targets.Contains(domain.ArtifactYul) {
		body := r.formatter.Format(contract.Yul)
		if err := r.write(ctx, domain.ArtifactYul, name, []byte(body)); err != nil {
			return err
		}
	}

	if r.req.Targets.Contains(domain.ArtifactBytecode) {
		switch {
		case !r.bytecodeBackend:
			r.skip(ctx, domain.ArtifactBytecode, name, "bytecode backend not available in this build")
		case !contract.HasBytecode():
			r.skip(ctx, domain.ArtifactBytecode, name, "contract has no bytecode")
		default:
			if err := r.write(ctx, domain.ArtifactBytecode, name, contract.Bytecode); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *emission) path(kind domain.ArtifactKind, contract string) string {
	if kind.ModuleScoped() {
		return domain.ModuleArtifactPath(r.req.OutputDir, kind)
	}
	return domain.ContractArtifactPath(r.req.OutputDir, contract, kind)
}

func (r *emission) vertexName(path string) string {
	rel, err := filepath.Rel(r.req.OutputDir, path)
	if err != nil {
		rel = path
	}
	return "emit " + filepath.ToSlash(rel)
}

func (r *emission) write(ctx context.Context, kind domain.ArtifactKind, contract string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := r.path(kind, contract)
	_, vertex := r.telemetry.Record(ctx, r.vertexName(path))

	if err := r.writer.Write(path, body); err != nil {
		vertex.Complete(err)
		return err
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("wrote %d bytes", len(body)))
	vertex.Complete(nil)

	r.report.Artifacts = append(r.report.Artifacts, domain.Artifact{
		Kind:     kind,
		Contract: contract,
		Path:     path,
		Size:     len(body),
		Status:   domain.ArtifactWritten,
	})
	return nil
}

func (r *emission) skip(ctx context.Context, kind domain.ArtifactKind, contract, reason string) {
	path := r.path(kind, contract)
	_, vertex := r.telemetry.Record(ctx, r.vertexName(path))
	vertex.Log(domain.LogLevelDebug, reason)
	vertex.Cached()

	r.report.Artifacts = append(r.report.Artifacts, domain.Artifact{
		Kind:     kind,
		Contract: contract,
		Path:     path,
		Status:   domain.ArtifactSkipped,
		Reason:   reason,
	})
}
