// Package environment resolves the platform build parameters and stages runtime libraries.
package environment

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.EnvironmentResolver.
type Resolver struct {
	executor ports.Executor
	logger   ports.Logger
	goos     string
	goarch   string
}

// NewResolver creates a Resolver for the running platform.
func NewResolver(executor ports.Executor, logger ports.Logger) *Resolver {
	return &Resolver{
		executor: executor,
		logger:   logger,
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
	}
}

// Resolve locates the toolchain, creates the output directory and returns the platform parameters.
func (r *Resolver) Resolve(ctx context.Context, s domain.Settings) (domain.BuildConfig, error) {
	root, err := r.toolchainRoot(ctx, s.Compiler)
	if err != nil {
		return domain.BuildConfig{}, err
	}

	if err := os.MkdirAll(s.OutDir, domain.DirPerm); err != nil {
		return domain.BuildConfig{}, zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", s.OutDir)
	}

	switch r.goos {
	case "darwin":
		libs := "macos"
		if r.goarch == "arm64" {
			libs = "macos-arm64"
		}
		flags := "-Wl,-rpath " + filepath.Join(root, s.VendorDir, libs)
		return domain.NewBuildConfig(".dylib", flags, "", "DYLD_LIBRARY_PATH"), nil
	case "windows":
		return domain.NewBuildConfig(".dll", "", "", "PATH"), nil
	default:
		staged := domain.StagedLibDir(s.OutDir)
		if err := r.stage(filepath.Join(root, s.VendorDir, domain.StagedLibDirName), s.VendorGlob, staged); err != nil {
			return domain.BuildConfig{}, err
		}
		return domain.NewBuildConfig(".so", "-Wl,-rpath=$ORIGIN/"+domain.StagedLibDirName, staged, "LD_LIBRARY_PATH"), nil
	}
}

func (r *Resolver) toolchainRoot(ctx context.Context, compiler string) (string, error) {
	out, err := r.executor.Output(ctx, domain.NewCommand(compiler, "root"))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrToolchainNotFound.Error()), "compiler", compiler)
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", zerr.With(domain.ErrToolchainNotFound, "compiler", compiler)
	}
	return root, nil
}

// stage copies the libraries matching pattern from src into dst. An existing dst is left untouched.
func (r *Resolver) stage(src, pattern, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrLibraryStagingFailed.Error()), "path", dst)
	}

	matches, err := filepath.Glob(filepath.Join(src, pattern))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLibraryStagingFailed.Error()), "pattern", pattern)
	}

	if err := os.MkdirAll(dst, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLibraryStagingFailed.Error()), "path", dst)
	}

	if len(matches) == 0 {
		r.logger.Warn("No runtime libraries matching " + pattern + " in " + src + ".")
		return nil
	}

	for _, file := range matches {
		if err := copyFile(file, filepath.Join(dst, filepath.Base(file))); err != nil {
			// Leave no partial directory behind so the next start retries.
			_ = os.RemoveAll(dst)
			return zerr.With(zerr.Wrap(err, domain.ErrLibraryStagingFailed.Error()), "file", file)
		}
	}

	r.logger.Info("Staged runtime libraries into " + dst + ".")
	return nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src) //nolint:gosec // path comes from the toolchain root
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode().Perm())
}
