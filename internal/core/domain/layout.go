package domain

import (
	"path/filepath"
	"time"
)

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "hotloop.yaml"

	// DefaultSourceDir is the tracked source tree, relative to the working directory.
	DefaultSourceDir = "source"

	// DefaultExtension is the tracked source file extension.
	DefaultExtension = ".odin"

	// DefaultOutDir holds the module artifact and the staged runtime libraries.
	DefaultOutDir = "build/hot_reload"

	// DefaultModuleName is the base name of the reloadable module artifact.
	DefaultModuleName = "game"

	// DefaultModulePackage is the package compiled into the reloadable module.
	DefaultModulePackage = "source"

	// DefaultExecutable is the host executable, relative to the working directory.
	DefaultExecutable = "game_hot_reload.bin"

	// DefaultExecutablePackage is the package compiled into the host executable.
	DefaultExecutablePackage = "source/main_hot_reload"

	// DefaultCompiler is the toolchain driver invoked for every build.
	DefaultCompiler = "odin"

	// DefaultStopFile is the stop sentinel, relative to the working directory.
	DefaultStopFile = "exit_signal.tmp"

	// DefaultVendorDir is the vendored library directory under the toolchain root.
	DefaultVendorDir = "vendor/raylib"

	// DefaultVendorGlob selects the shared libraries staged next to the module on linux.
	DefaultVendorGlob = "libraylib*.so*"

	// StagedLibDirName is the subdirectory of the output directory holding staged libraries.
	StagedLibDirName = "linux"

	// TempSuffix is appended to the module name while a build is in progress.
	TempSuffix = "_tmp"

	// DefaultPollInterval is the wait between two change detection scans.
	DefaultPollInterval = time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for staged shared libraries (rwxr-xr-x).
	ExecPerm = 0o755
)

// DefaultFlags are passed to the compiler for both artifacts.
func DefaultFlags() []string {
	return []string{"-strict-style", "-vet", "-debug"}
}

// DefaultDefines are passed to the compiler for the module artifact only.
func DefaultDefines() map[string]string {
	return map[string]string{"RAYLIB_SHARED": "true"}
}

// ModulePath returns the final location of the module artifact.
func ModulePath(outDir, moduleName, suffix string) string {
	return filepath.Join(outDir, moduleName+suffix)
}

// TempModulePath returns the location the module is compiled to before it is promoted.
func TempModulePath(outDir, moduleName, suffix string) string {
	return filepath.Join(outDir, moduleName+TempSuffix+suffix)
}

// StagedLibDir returns the directory holding staged runtime libraries.
func StagedLibDir(outDir string) string {
	return filepath.Join(outDir, StagedLibDirName)
}
