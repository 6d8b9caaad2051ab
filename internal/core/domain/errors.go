package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainNotFound is returned when the compiler cannot be located or does not report its root.
	ErrToolchainNotFound = zerr.New("toolchain not found")

	// ErrLibraryStagingFailed is returned when runtime libraries cannot be copied into the output directory.
	ErrLibraryStagingFailed = zerr.New("failed to stage runtime libraries")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range or empty.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrSourceDirNotFound is returned when the tracked source directory does not exist.
	ErrSourceDirNotFound = zerr.New("source directory not found")

	// ErrSourceScanFailed is returned when walking the source tree fails.
	ErrSourceScanFailed = zerr.New("failed to scan source directory")

	// ErrCompileFailed is returned when the compiler exits with a non-zero status.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrArtifactPromoteFailed is returned when a freshly built module cannot be renamed into place.
	ErrArtifactPromoteFailed = zerr.New("failed to move module artifact into place")

	// ErrProcessListFailed is returned when the OS process listing cannot be obtained.
	ErrProcessListFailed = zerr.New("failed to list running processes")

	// ErrProcessSpawnFailed is returned when the host executable cannot be started.
	ErrProcessSpawnFailed = zerr.New("failed to start host executable")

	// ErrStopSignalFailed is returned when the stop sentinel cannot be inspected or removed.
	ErrStopSignalFailed = zerr.New("failed to consume stop signal")

	// ErrBuildFailed is returned by a one-shot build when either artifact could not be produced.
	ErrBuildFailed = zerr.New("build failed")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
