package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iskele.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Docker.Host)
	assert.Empty(t, cfg.Docker.Version)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadWithoutConfigFile(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
server:
  host: 0.0.0.0
  port: 9090
docker:
  host: tcp://uzak-daemon:2375
  version: "1.43"
logging:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "tcp://uzak-daemon:2375", cfg.Docker.Host)
	assert.Equal(t, "1.43", cfg.Docker.Version)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
server:
  port: 3000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
logging:
  level: ultra
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geçersiz log seviyesi")
}

func TestLoadRejectsInvalidLogFormat(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
logging:
  format: xml
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geçersiz log formatı")
}

func TestLoadRejectsInvalidServerPort(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
server:
  port: 99999
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geçersiz server portu")
}

func TestLoadRejectsSchemalessDockerHost(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
docker:
  host: /var/run/docker.sock
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geçersiz docker host")
}

func TestListenAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", DefaultConfig().ListenAddr())

	cfg := &Config{Server: ServerConfig{Host: "0.0.0.0", Port: 9090}}
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr())
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, "bozuk: [yaml")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config dosyası okunamadı")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "iskele.yaml")

	original := &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 9595},
		Docker:  DockerConfig{Host: "unix:///var/run/docker.sock", Version: "1.43"},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
	require.NoError(t, SaveConfig(original, path))

	viper.Reset()
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original, loaded)
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GetConfigDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".iskele"), dir)
}
