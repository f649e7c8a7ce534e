// Package config loads the iskele service configuration from file and
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Docker  DockerConfig  `mapstructure:"docker"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DockerConfig holds Docker daemon configuration. An empty host defers to
// the environment (DOCKER_HOST), an empty version enables API version
// negotiation.
type DockerConfig struct {
	Host    string `mapstructure:"host"`
	Version string `mapstructure:"version"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Docker: DockerConfig{
			Host:    "",
			Version: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	// Set config file path
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// Look for config in current directory and home directory
		viper.SetConfigName("iskele")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/.iskele")
	}

	// Environment variables
	viper.SetEnvPrefix("ISKELE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config dosyası okunamadı: %w", err)
		}
		// Config file not found, use defaults
	}

	// Unmarshal config
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("config parse edilemedi: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config doğrulanamadı: %w", err)
	}

	return config, nil
}

// validateConfig validates configuration values
func validateConfig(config *Config) error {
	// Validate server port
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("geçersiz server portu: %d", config.Server.Port)
	}

	// Validate docker host scheme; empty means DOCKER_HOST / default socket
	if config.Docker.Host != "" && !strings.Contains(config.Docker.Host, "://") {
		return fmt.Errorf("geçersiz docker host: %s (unix:// veya tcp:// şeması bekleniyor)", config.Docker.Host)
	}

	// Validate log level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	if !validLevels[config.Logging.Level] {
		return fmt.Errorf("geçersiz log seviyesi: %s", config.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}

	if !validFormats[config.Logging.Format] {
		return fmt.Errorf("geçersiz log formatı: %s", config.Logging.Format)
	}

	return nil
}

// GetConfigDir returns the configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".iskele"), nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config, configPath string) error {
	viper.Set("server", config.Server)
	viper.Set("docker", config.Docker)
	viper.Set("logging", config.Logging)

	if configPath == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return fmt.Errorf("config dizini alınamadı: %w", err)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("config dizini oluşturulamadı: %w", err)
		}

		configPath = filepath.Join(configDir, "iskele.yaml")
	}

	return viper.WriteConfigAs(configPath)
}
