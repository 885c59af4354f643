package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultPath is read when no config file is named.
const DefaultPath = "rnaplot.json"

type Config struct {
	InputMultistrand   string `json:"input_multistrand" yaml:"input_multistrand"`
	InputDrTransformer string `json:"input_drtransformer" yaml:"input_drtransformer"`
	InputKinwalker     string `json:"input_kinwalker" yaml:"input_kinwalker"`
	OutputDir          string `json:"output_dir" yaml:"output_dir"`
	LogFile            string `json:"log_file" yaml:"log_file"`
	LogLevel           string `json:"log_level" yaml:"log_level"`
}

// LoadConfig loads a config from the given path, or ./rnaplot.json if path
// is empty. A missing file yields an empty config. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var c Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
