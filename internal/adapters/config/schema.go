package config

// Groupfile represents the structure of the fanout.yaml configuration file.
type Groupfile struct {
	Version string              `yaml:"version"`
	Groups  map[string]GroupDTO `yaml:"groups"`
	Passes  map[string]PassDTO  `yaml:"passes"`
}

// GroupDTO represents a source-group declaration in the configuration.
type GroupDTO struct {
	DependsOn []string `yaml:"dependsOn"`
}

// PassDTO represents a compilation-pass declaration in the configuration.
type PassDTO struct {
	Target       string `yaml:"target"`
	Platform     string `yaml:"platform"`
	DefaultGroup string `yaml:"defaultGroup"`
	Test         bool   `yaml:"test"`
}
