package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// defaultJSONPath is the optional config file used when no source
	// names one explicitly.
	defaultJSONPath string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:         make([]*StructuredConfig, 0, 4),
		defaultJSONPath: defaultJSONPath(),
	}
}

// build merges the collected configs. mergo.Merge only fills fields that are
// still zero, so configs appended earlier take precedence.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON loads the config file named by the highest-precedence source.
// An explicitly named file must exist; the default one is optional.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		if b.defaultJSONPath == "" {
			return b
		}
		if _, err := os.Stat(b.defaultJSONPath); errors.Is(err, os.ErrNotExist) {
			return b
		}
		jsonPath = b.defaultJSONPath
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// defaultJSONPath returns config.json in the directory of the running
// executable, or an empty string if that directory cannot be resolved.
func defaultJSONPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Join(filepath.Dir(execPath), DefaultJSONFileName)
}
