package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "TRACKER"

type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Worker  WorkerConfig  `yaml:"worker" mapstructure:"worker"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            string        `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	RateLimit       int           `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per minute per client
	CORSOrigins     []string      `yaml:"cors_origins" mapstructure:"cors_origins"`
}

type LoggingConfig struct {
	Development bool   `yaml:"development" mapstructure:"development"`
	File        string `yaml:"file" mapstructure:"file"`
}

type DisplayConfig struct {
	Locale string `yaml:"locale" mapstructure:"locale"`
}

type WorkerConfig struct {
	OverdueInterval time.Duration `yaml:"overdue_interval" mapstructure:"overdue_interval"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"host":   "server.host",
	"port":   "server.port",
	"dev":    "logging.development",
	"log":    "logging.file",
	"locale": "display.locale",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.rate_limit", 300)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("logging.development", false)
	v.SetDefault("logging.file", "")
	v.SetDefault("display.locale", "en-US")
	v.SetDefault("worker.overdue_interval", time.Minute)
}

// Load merges defaults, the YAML file, TRACKER_* variables and flags, in that order.
// An empty path looks for tracker.yml in the working directory and skips it when absent.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tracker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &ConfigError{Field: "server.port", Message: "port cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.timeouts", Message: "read and write timeouts must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Server.RateLimit < 1 {
		return &ConfigError{Field: "server.rate_limit", Message: "rate limit must be at least 1"}
	}
	if c.Display.Locale == "" {
		return &ConfigError{Field: "display.locale", Message: "locale cannot be empty"}
	}
	if c.Worker.OverdueInterval <= 0 {
		return &ConfigError{Field: "worker.overdue_interval", Message: "interval must be positive"}
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
