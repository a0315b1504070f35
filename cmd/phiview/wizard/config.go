package wizard

import (
	"fmt"
	"os"

	"github.com/mrsinham/phiview/cmd/phiview/wizard/screens"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk wizard configuration. It pre-fills the start
// screen so recurring scans don't retype the same paths.
type Config struct {
	Mode      string `yaml:"mode"` // "scan" or "review"
	InputDir  string `yaml:"input_dir,omitempty"`
	ReportDir string `yaml:"report_dir,omitempty"`
	Project   string `yaml:"project,omitempty"`
	Jar       string `yaml:"jar,omitempty"`
	Rules     string `yaml:"rules,omitempty"`
	HTMLPath  string `yaml:"html_path,omitempty"`
}

// startValues converts the config into start screen form bindings.
func (c *Config) startValues() screens.StartValues {
	return screens.StartValues{
		Mode:      c.Mode,
		InputDir:  c.InputDir,
		ReportDir: c.ReportDir,
		Project:   c.Project,
		Jar:       c.Jar,
		Rules:     c.Rules,
		HTMLPath:  c.HTMLPath,
	}
}

// LoadFromYAML reads a wizard configuration from path.
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// SaveToYAML writes a wizard configuration to path.
func SaveToYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
