package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "MERCHANT"
	configDir  = ".config/merchant"
	configFile = "config.toml"

	KeyBaseURI    = "api.base_uri"
	KeyTimeout    = "api.timeout"
	KeyUserAgent  = "api.user_agent"
	KeyLogLevel   = "log.level"
	KeySecretsDir = "secrets.dir"

	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "merchant-cli"
	DefaultLogLevel  = "info"
)

var ErrUnknownKey = errors.New("unknown config key")

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Log     LogConfig     `mapstructure:"log"`
	Secrets SecretsConfig `mapstructure:"secrets"`
}

type APIConfig struct {
	BaseURI   string        `mapstructure:"base_uri" validate:"required,http_url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent string        `mapstructure:"user_agent"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

type SecretsConfig struct {
	Dir string `mapstructure:"dir"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultPath is ~/.config/merchant/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configFile), nil
}

// Load merges, in increasing precedence, defaults, the TOML file at path, a
// .env file in the working directory and MERCHANT_* environment variables.
// A missing file is not an error. The result is not validated.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env file: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetDefault(KeyBaseURI, "")
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyUserAgent, DefaultUserAgent)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeySecretsDir, filepath.Join(homeDir, configDir, "secrets"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fieldErr := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", keyForField(fieldErr.StructNamespace()), fieldErr.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}

// Set assigns one dotted key. Values are checked the same way Validate checks
// them so a bad value never reaches the config file.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case KeyBaseURI:
		next.API.BaseURI = strings.TrimSpace(value)
		if err := validate.Var(next.API.BaseURI, "required,http_url"); err != nil {
			return fmt.Errorf("%s: %q is not an http(s) url", key, value)
		}
	case KeyTimeout:
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("%s: must be positive", key)
		}
		next.API.Timeout = timeout
	case KeyUserAgent:
		next.API.UserAgent = value
	case KeyLogLevel:
		if err := validate.Var(value, "oneof=debug info warn error"); err != nil {
			return fmt.Errorf("%s: %q is not one of debug, info, warn, error", key, value)
		}
		next.Log.Level = value
	case KeySecretsDir:
		next.Secrets.Dir = value
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	*c = next
	return nil
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{KeyBaseURI, KeyTimeout, KeyUserAgent, KeyLogLevel, KeySecretsDir}
}

func (c Config) Get(key string) (string, error) {
	switch key {
	case KeyBaseURI:
		return c.API.BaseURI, nil
	case KeyTimeout:
		return c.API.Timeout.String(), nil
	case KeyUserAgent:
		return c.API.UserAgent, nil
	case KeyLogLevel:
		return c.Log.Level, nil
	case KeySecretsDir:
		return c.Secrets.Dir, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
}

func keyForField(namespace string) string {
	switch namespace {
	case "Config.API.BaseURI":
		return KeyBaseURI
	case "Config.API.Timeout":
		return KeyTimeout
	case "Config.Log.Level":
		return KeyLogLevel
	default:
		return namespace
	}
}
