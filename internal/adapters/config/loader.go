// Package config provides the configuration loader for hotloop.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and merges it over domain.DefaultSettings.
// A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Hotfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			l.Logger.Warn("Config file " + path + " is empty, using defaults.")
			return settings, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := apply(&settings, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	if err := validate(&settings); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	return settings, nil
}

func apply(s *domain.Settings, f *Hotfile) error {
	setString(&s.SourceDir, f.SourceDir)
	setString(&s.Extension, f.Extension)
	setString(&s.OutDir, f.OutDir)
	setString(&s.ModuleName, f.ModuleName)
	setString(&s.ModulePackage, f.ModulePackage)
	setString(&s.Executable, f.Executable)
	setString(&s.ExecutablePackage, f.ExecutablePackage)
	setString(&s.Compiler, f.Compiler)
	setString(&s.StopFile, f.StopFile)
	setString(&s.VendorDir, f.VendorDir)
	setString(&s.VendorGlob, f.VendorGlob)

	if f.Flags != nil {
		s.Flags = f.Flags
	}
	if f.Defines != nil {
		s.Defines = f.Defines
	}
	if f.Notify != nil {
		s.Notify = *f.Notify
	}

	if f.PollInterval != nil {
		d, err := time.ParseDuration(*f.PollInterval)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "key", "poll_interval")
		}
		s.PollInterval = d
	}

	if s.Extension != "" && !strings.HasPrefix(s.Extension, ".") {
		s.Extension = "." + s.Extension
	}

	return nil
}

func validate(s *domain.Settings) error {
	required := []struct {
		key   string
		value string
	}{
		{"source_dir", s.SourceDir},
		{"extension", s.Extension},
		{"out_dir", s.OutDir},
		{"module_name", s.ModuleName},
		{"executable", s.Executable},
		{"compiler", s.Compiler},
		{"stop_file", s.StopFile},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(domain.ErrInvalidConfig, "key", r.key)
		}
	}

	if s.PollInterval <= 0 {
		return zerr.With(zerr.With(domain.ErrInvalidConfig, "key", "poll_interval"), "value", s.PollInterval.String())
	}

	return nil
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
