package domain

// ProjectConfig holds the settings read from the project configuration file.
// Nil fields and an empty OutputDir mean the file did not set them.
type ProjectConfig struct {
	OutputDir string
	Targets   *TargetSet
	Overwrite *bool
	Optimize  *bool
}

// BuildSettings are the resolved options of one build invocation.
type BuildSettings struct {
	OutputDir string
	Targets   TargetSet
	Overwrite bool
	Optimize  bool
}

// DefaultBuildSettings returns the settings used when neither flags nor config set a value.
func DefaultBuildSettings() BuildSettings {
	return BuildSettings{
		OutputDir: DefaultOutputDir,
		Targets:   DefaultTargets(),
	}
}

// ApplyConfig overlays the values cfg sets onto s.
func (s BuildSettings) ApplyConfig(cfg *ProjectConfig) BuildSettings {
	if cfg == nil {
		return s
	}
	if cfg.OutputDir != "" {
		s.OutputDir = cfg.OutputDir
	}
	if cfg.Targets != nil {
		s.Targets = *cfg.Targets
	}
	if cfg.Overwrite != nil {
		s.Overwrite = *cfg.Overwrite
	}
	if cfg.Optimize != nil {
		s.Optimize = *cfg.Optimize
	}
	return s
}
