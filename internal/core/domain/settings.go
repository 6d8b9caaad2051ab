package domain

import (
	"maps"
	"slices"
	"time"
)

// Settings describes the project layout and toolchain the orchestrator drives.
type Settings struct {
	SourceDir         string
	Extension         string
	OutDir            string
	ModuleName        string
	ModulePackage     string
	Executable        string
	ExecutablePackage string
	Compiler          string
	Flags             []string
	Defines           map[string]string
	StopFile          string
	PollInterval      time.Duration
	VendorDir         string
	VendorGlob        string
	Notify            bool
}

// DefaultSettings returns the layout used when no configuration file is present.
func DefaultSettings() Settings {
	return Settings{
		SourceDir:         DefaultSourceDir,
		Extension:         DefaultExtension,
		OutDir:            DefaultOutDir,
		ModuleName:        DefaultModuleName,
		ModulePackage:     DefaultModulePackage,
		Executable:        DefaultExecutable,
		ExecutablePackage: DefaultExecutablePackage,
		Compiler:          DefaultCompiler,
		Flags:             DefaultFlags(),
		Defines:           DefaultDefines(),
		StopFile:          DefaultStopFile,
		PollInterval:      DefaultPollInterval,
		VendorDir:         DefaultVendorDir,
		VendorGlob:        DefaultVendorGlob,
	}
}

// Clone returns a deep copy so callers can hand settings out without sharing slices or maps.
func (s Settings) Clone() Settings {
	s.Flags = slices.Clone(s.Flags)
	s.Defines = maps.Clone(s.Defines)
	return s
}
