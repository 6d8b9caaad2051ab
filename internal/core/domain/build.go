package domain

// BuildConfig carries the platform parameters resolved once at startup.
// It is passed by value and never mutated after creation.
type BuildConfig struct {
	moduleSuffix   string
	linkerFlags    string
	libraryDir     string
	libraryPathVar string
}

// NewBuildConfig creates a BuildConfig.
// libraryDir is the directory prepended to libraryPathVar when the host executable starts.
func NewBuildConfig(moduleSuffix, linkerFlags, libraryDir, libraryPathVar string) BuildConfig {
	return BuildConfig{
		moduleSuffix:   moduleSuffix,
		linkerFlags:    linkerFlags,
		libraryDir:     libraryDir,
		libraryPathVar: libraryPathVar,
	}
}

// ModuleSuffix returns the platform shared library suffix, including the dot.
func (c BuildConfig) ModuleSuffix() string { return c.moduleSuffix }

// LinkerFlags returns the extra linker flags passed through to the compiler.
func (c BuildConfig) LinkerFlags() string { return c.linkerFlags }

// LibraryDir returns the staged runtime library directory.
func (c BuildConfig) LibraryDir() string { return c.libraryDir }

// LibraryPathVar returns the environment variable the host uses to locate shared libraries.
func (c BuildConfig) LibraryPathVar() string { return c.libraryPathVar }

// BuildOutcome is the result of a single build attempt.
type BuildOutcome struct {
	ModuleBuilt     bool
	ExecutableBuilt bool
	// ModuleDigest is the content hash of the promoted module, empty when the module build failed.
	ModuleDigest string
}

// OK reports whether both artifacts were produced and the host may be run.
func (o BuildOutcome) OK() bool {
	return o.ModuleBuilt && o.ExecutableBuilt
}

// RunAction is what the process manager did after a successful build.
type RunAction uint8

const (
	// RunSkipped means no process action was taken because the build failed.
	RunSkipped RunAction = iota
	// RunStarted means the host executable was spawned.
	RunStarted
	// RunReloaded means the host was already running and is expected to reload the module itself.
	RunReloaded
	// RunFailed means spawning the host executable failed.
	RunFailed
)

func (a RunAction) String() string {
	switch a {
	case RunStarted:
		return "started"
	case RunReloaded:
		return "reloaded"
	case RunFailed:
		return "failed"
	default:
		return "skipped"
	}
}
