package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"phishvet-poc/ensemble"
)

// Duration wraps time.Duration so yaml values like "5s" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the process configuration: a config.yaml file layered under
// environment overrides (PORT, WHITELIST_PATH).
type Config struct {
	Port          string            `yaml:"port"`
	WhitelistPath string            `yaml:"whitelist_path"`
	WhoisTimeout  Duration          `yaml:"whois_timeout"`
	TLSTimeout    Duration          `yaml:"tls_timeout"`
	Models        map[string]string `yaml:"models"`
}

func defaultConfig() Config {
	return Config{
		Port:          "8080",
		WhitelistPath: "final_whitelist.csv",
		Models: map[string]string{
			string(ensemble.LogisticRegression): "models/logistic_regression.json",
			string(ensemble.RandomForest):       "models/random_forest.json",
			string(ensemble.SVM):                "models/svm.json",
		},
	}
}

// LoadConfig reads the yaml file when present and applies env overrides.
// A missing file falls back to defaults; a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if wl := os.Getenv("WHITELIST_PATH"); wl != "" {
		cfg.WhitelistPath = wl
	}

	return cfg, nil
}

// ModelPaths maps the canonical model IDs onto their artifact paths.
func (c Config) ModelPaths() map[ensemble.ID]string {
	paths := make(map[ensemble.ID]string, len(c.Models))
	for id, path := range c.Models {
		paths[ensemble.ID(id)] = path
	}
	return paths
}
