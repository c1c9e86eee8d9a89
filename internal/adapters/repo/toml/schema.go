package toml

import (
	"fmt"
	"time"

	"github.com/bnema/merchant-cli/internal/config"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	API     apiSchema     `toml:"api"`
	Log     logSchema     `toml:"log,omitempty"`
	Secrets secretsSchema `toml:"secrets,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type apiSchema struct {
	BaseURI   string `toml:"base_uri"`
	Timeout   string `toml:"timeout,omitempty"`
	UserAgent string `toml:"user_agent,omitempty"`
}

type logSchema struct {
	Level string `toml:"level,omitempty"`
}

type secretsSchema struct {
	Dir string `toml:"dir,omitempty"`
}

func toSchema(cfg config.Config) fileSchema {
	timeout := ""
	if cfg.API.Timeout > 0 {
		timeout = cfg.API.Timeout.String()
	}

	return fileSchema{
		Version: currentSchemaVersion,
		API: apiSchema{
			BaseURI:   cfg.API.BaseURI,
			Timeout:   timeout,
			UserAgent: cfg.API.UserAgent,
		},
		Log:     logSchema{Level: cfg.Log.Level},
		Secrets: secretsSchema{Dir: cfg.Secrets.Dir},
	}
}

func fromSchema(file fileSchema) config.Config {
	return config.Config{
		API: config.APIConfig{
			BaseURI:   file.API.BaseURI,
			Timeout:   parseDuration(file.API.Timeout),
			UserAgent: file.API.UserAgent,
		},
		Log:     config.LogConfig{Level: file.Log.Level},
		Secrets: config.SecretsConfig{Dir: file.Secrets.Dir},
	}
}

func parseDuration(raw string) time.Duration {
	if raw == "" {
		return 0
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}

	return parsed
}
