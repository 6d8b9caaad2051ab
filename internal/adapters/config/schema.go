package config

// Hotfile represents the structure of the hotloop.yaml configuration file.
// Every field is optional; unset fields keep their default.
type Hotfile struct {
	SourceDir         *string           `yaml:"source_dir"`
	Extension         *string           `yaml:"extension"`
	OutDir            *string           `yaml:"out_dir"`
	ModuleName        *string           `yaml:"module_name"`
	ModulePackage     *string           `yaml:"module_package"`
	Executable        *string           `yaml:"executable"`
	ExecutablePackage *string           `yaml:"executable_package"`
	Compiler          *string           `yaml:"compiler"`
	Flags             []string          `yaml:"flags"`
	Defines           map[string]string `yaml:"defines"`
	StopFile          *string           `yaml:"stop_file"`
	PollInterval      *string           `yaml:"poll_interval"`
	VendorDir         *string           `yaml:"vendor_dir"`
	VendorGlob        *string           `yaml:"vendor_glob"`
	Notify            *bool             `yaml:"notify"`
}
