package config

import (
	"os"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PogrebPostingMapper  *string `yaml:"pogrebPostingMapper" validate:"required"`
	PogrebDocumentMapper *string `yaml:"pogrebDocumentMapper" validate:"required"`
	PogrebInMemory       *bool   `yaml:"pogrebInMemory"`
	BufferLimit          *int    `yaml:"bufferLimit" validate:"omitempty,gte=7"`
	LogLevel             *string `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}

func Init() *Config {
	// * parse arguments
	path := os.Getenv("BACKEND_CONFIG_PATH")
	if path == "" {
		path = "config.yml"
	}

	// * read config
	yml, err := os.ReadFile(path)
	if err != nil {
		gut.Fatal("Unable to read configuration file", err)
	}

	config, err := Parse(yml)
	if err != nil {
		gut.Fatal("Unable to parse configuration file", err)
	}

	// * validate config
	if err := gut.Validate(config); err != nil {
		gut.Fatal("Invalid configuration", err)
	}

	return config
}

// Parse decodes a yaml document and fills the optional fields.
func Parse(yml []byte) (*Config, error) {
	config := new(Config)
	if err := yaml.Unmarshal(yml, config); err != nil {
		return nil, err
	}

	if config.PogrebInMemory == nil {
		config.PogrebInMemory = new(bool)
	}
	if config.BufferLimit == nil {
		limit := 32768
		config.BufferLimit = &limit
	}
	if config.LogLevel == nil {
		level := "info"
		config.LogLevel = &level
	}

	return config, nil
}
