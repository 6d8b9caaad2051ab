// Package builder drives the compiler for the reloadable module and the host executable.
package builder

import (
	"context"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Driver)(nil)

// Driver builds both artifacts and hands successful builds to the process manager.
// It is not safe for concurrent use; the watch loop runs one build at a time.
type Driver struct {
	settings domain.Settings
	config   domain.BuildConfig
	executor ports.Executor
	hasher   ports.Hasher
	manager  ports.ProcessManager
	tracer   ports.Tracer
	logger   ports.Logger
	output   io.Writer

	lastDigest string
}

// NewDriver creates a Driver. Compiler output is written to output; a nil output
// forwards it line by line to the logger.
func NewDriver(
	settings domain.Settings,
	config domain.BuildConfig,
	executor ports.Executor,
	hasher ports.Hasher,
	manager ports.ProcessManager,
	tracer ports.Tracer,
	logger ports.Logger,
	output io.Writer,
) *Driver {
	return &Driver{
		settings: settings.Clone(),
		config:   config,
		executor: executor,
		hasher:   hasher,
		manager:  manager,
		tracer:   tracer,
		logger:   logger,
		output:   output,
	}
}

// ModulePath returns where the promoted module lives.
func (d *Driver) ModulePath() string {
	return domain.ModulePath(d.settings.OutDir, d.settings.ModuleName, d.config.ModuleSuffix())
}

// ModuleCommand returns the compiler invocation for the reloadable module.
// It writes to the temporary path; the result is promoted only on success.
func (d *Driver) ModuleCommand() domain.Command {
	s := d.settings
	args := []string{"build", s.ModulePackage}
	if flags := d.config.LinkerFlags(); flags != "" {
		args = append(args, "-extra-linker-flags:"+flags)
	}
	for _, key := range slices.Sorted(maps.Keys(s.Defines)) {
		args = append(args, "-define:"+key+"="+s.Defines[key])
	}
	args = append(args,
		"-build-mode:dll",
		"-out:"+domain.TempModulePath(s.OutDir, s.ModuleName, d.config.ModuleSuffix()),
	)
	args = append(args, s.Flags...)
	return domain.NewCommand(s.Compiler, args...)
}

// ExecutableCommand returns the compiler invocation for the host executable.
func (d *Driver) ExecutableCommand() domain.Command {
	s := d.settings
	args := []string{"build", s.ExecutablePackage, "-out:" + s.Executable}
	args = append(args, s.Flags...)
	return domain.NewCommand(s.Compiler, args...)
}

// BuildModule compiles the module to the temporary path and renames it into place.
// A failed build leaves the previous module untouched.
func (d *Driver) BuildModule(ctx context.Context) bool {
	_, ok := d.buildModule(ctx)
	return ok
}

func (d *Driver) buildModule(ctx context.Context) (string, bool) {
	ctx, span := d.tracer.Start(ctx, "build.module")
	defer span.End()

	artifact := d.ModulePath()
	tmp := domain.TempModulePath(d.settings.OutDir, d.settings.ModuleName, d.config.ModuleSuffix())
	span.SetAttribute("artifact", artifact)

	d.logger.Info("Building " + filepath.Base(artifact))

	if err := d.executor.Execute(ctx, d.ModuleCommand(), d.output); err != nil {
		_ = os.Remove(tmp)
		err = zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "artifact", artifact)
		span.RecordError(err)
		d.logger.Error(zerr.Wrap(err, "shared library build failed"))
		return "", false
	}

	if err := os.Rename(tmp, artifact); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrArtifactPromoteFailed.Error()), "artifact", artifact)
		span.RecordError(err)
		d.logger.Error(err)
		return "", false
	}

	digest, err := d.hasher.HashFile(artifact)
	if err != nil {
		d.logger.Warn("Could not hash " + artifact + ": " + err.Error())
		return "", true
	}
	span.SetAttribute("digest", digest)

	if digest == d.lastDigest {
		d.logger.Info(filepath.Base(artifact) + " is unchanged.")
	}
	d.lastDigest = digest

	return digest, true
}

// BuildExecutable compiles the host executable.
func (d *Driver) BuildExecutable(ctx context.Context) bool {
	ctx, span := d.tracer.Start(ctx, "build.executable")
	defer span.End()

	span.SetAttribute("artifact", d.settings.Executable)
	d.logger.Info("Building " + d.settings.Executable)

	if err := d.executor.Execute(ctx, d.ExecutableCommand(), d.output); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "artifact", d.settings.Executable)
		span.RecordError(err)
		d.logger.Error(zerr.Wrap(err, "executable build failed"))
		return false
	}
	return true
}

// BuildAndRun attempts both builds, module first, and runs the host only when both succeeded.
func (d *Driver) BuildAndRun(ctx context.Context) domain.BuildOutcome {
	ctx, span := d.tracer.Start(ctx, "rebuild")
	defer span.End()

	digest, moduleBuilt := d.buildModule(ctx)
	outcome := domain.BuildOutcome{
		ModuleBuilt:     moduleBuilt,
		ExecutableBuilt: d.BuildExecutable(ctx),
		ModuleDigest:    digest,
	}

	span.SetAttribute("module_built", outcome.ModuleBuilt)
	span.SetAttribute("executable_built", outcome.ExecutableBuilt)

	if !outcome.OK() {
		span.SetAttribute("action", domain.RunSkipped.String())
		return outcome
	}

	action := d.manager.RunOrNotify(ctx)
	span.SetAttribute("action", action.String())
	return outcome
}
