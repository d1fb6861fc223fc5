package config

// Kilnfile represents the structure of the kiln.yaml configuration file.
type Kilnfile struct {
	Version  string    `yaml:"version"`
	Output   OutputDTO `yaml:"output"`
	Emit     []string  `yaml:"emit"`
	Optimize *bool     `yaml:"optimize"`
}

// OutputDTO represents the output section of the configuration.
type OutputDTO struct {
	Dir       string `yaml:"dir"`
	Overwrite *bool  `yaml:"overwrite"`
}
