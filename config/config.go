package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataPath is the directory holding the experiment run files
	DataPath string `yaml:"data_path"`

	// Metrics selects which pipelines run; any of vmaf, lpips, qoe
	Metrics []string `yaml:"metrics"`

	// Workers bounds concurrent run analyses (default 10)
	Workers int `yaml:"workers"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DataPath: ".",
		Metrics:  []string{"vmaf", "lpips", "qoe"},
		Workers:  10,
	}
}

// Load reads config from a YAML file, applying defaults for missing
// values. A missing file is not an error, the defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.DataPath == "" {
		cfg.DataPath = "."
	}
	if len(cfg.Metrics) == 0 {
		cfg.Metrics = []string{"vmaf", "lpips", "qoe"}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 10
	}
	return cfg, nil
}
