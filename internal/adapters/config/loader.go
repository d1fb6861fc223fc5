// Package config provides the project configuration loader for kiln.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration file at path. A missing file yields an empty configuration.
func (l *Loader) Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.ProjectConfig{}, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "unable to read configuration"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded configuration from " + path)
	}
	return cfg, nil
}

// Parse decodes a kiln.yaml document.
func Parse(data []byte) (*domain.ProjectConfig, error) {
	var kilnfile Kilnfile
	if err := yaml.Unmarshal(data, &kilnfile); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "invalid configuration")
	}

	cfg := &domain.ProjectConfig{
		OutputDir: strings.TrimSpace(kilnfile.Output.Dir),
		Overwrite: kilnfile.Output.Overwrite,
		Optimize:  kilnfile.Optimize,
	}

	if kilnfile.Emit != nil {
		targets, err := domain.ParseTargets(kilnfile.Emit)
		if err != nil {
			return nil, err
		}
		cfg.Targets = &targets
	}

	return cfg, nil
}
