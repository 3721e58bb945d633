package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadExportConfig loads and validates the export configuration from a
// YAML file
func LoadExportConfig(path string) (ExportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ExportConfig{}, err
	}
	return parseExportConfig(data)
}

func parseExportConfig(data []byte) (ExportConfig, error) {
	var cfg ExportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ExportConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return ExportConfig{}, err
	}
	return cfg, nil
}
