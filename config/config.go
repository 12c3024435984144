package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/status-im/market-dashboard/cache"
)

// ErrConfigurationMissing is returned by Validate when a required setting is absent.
// It is a startup condition: the process must not serve requests without it.
var ErrConfigurationMissing = errors.New("configuration missing")

// Environment variables that override the config file
const (
	EnvCoingeckoBaseURL    = "COINGECKO_BASE_URL"
	EnvCoingeckoAPIKey     = "COINGECKO_API_KEY"
	EnvCoingeckoAPIKeyType = "COINGECKO_API_KEY_TYPE"
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
)

type Config struct {
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Cache     cache.Config    `yaml:"cache"`
	Server    ServerConfig    `yaml:"server"`
	LogLevel  string          `yaml:"log_level"`
}

// ServerConfig configures the dashboard HTTP server
type ServerConfig struct {
	Port string `yaml:"port"`
}

// GetDefaultConfig returns configuration with every optional field populated
func GetDefaultConfig() *Config {
	return &Config{
		CoinGecko: GetDefaultCoinGeckoConfig(),
		Cache:     cache.DefaultCacheConfig(),
		Server:    ServerConfig{Port: "8080"},
		LogLevel:  "info",
	}
}

// LoadConfig reads the YAML file at path on top of the defaults and applies
// environment overrides. An empty path skips the file.
// The result is not validated, call Validate before use.
func LoadConfig(path string) (*Config, error) {
	config := GetDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	config.applyEnv(os.LookupEnv)
	config.CoinGecko.APIKeyType = strings.ToLower(strings.TrimSpace(config.CoinGecko.APIKeyType))

	return config, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvCoingeckoBaseURL); ok && v != "" {
		c.CoinGecko.BaseURL = v
	}
	if v, ok := lookup(EnvCoingeckoAPIKey); ok && v != "" {
		c.CoinGecko.APIKey = v
	}
	if v, ok := lookup(EnvCoingeckoAPIKeyType); ok && v != "" {
		c.CoinGecko.APIKeyType = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		c.Server.Port = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate fails fast on missing or inconsistent required settings
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CoinGecko.BaseURL) == "" {
		return fmt.Errorf("%w: coingecko base url (set %s)", ErrConfigurationMissing, EnvCoingeckoBaseURL)
	}
	if strings.TrimSpace(c.CoinGecko.APIKey) == "" {
		return fmt.Errorf("%w: coingecko api key (set %s)", ErrConfigurationMissing, EnvCoingeckoAPIKey)
	}
	switch c.CoinGecko.APIKeyType {
	case APIKeyTypeDemo, APIKeyTypePro:
	default:
		return fmt.Errorf("invalid coingecko api_key_type %q, must be %q or %q",
			c.CoinGecko.APIKeyType, APIKeyTypeDemo, APIKeyTypePro)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("%w: server port (set %s)", ErrConfigurationMissing, EnvPort)
	}
	return nil
}
