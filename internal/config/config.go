// Package config defines configuration structures and loading logic for
// FocusShield. It supports YAML configuration files with sensible defaults;
// when no file exists the defaults apply unchanged.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"focushield/internal/utils"
)

type Config struct {
	Hosts   HostsConfig   `yaml:"hosts"`
	Storage StorageConfig `yaml:"storage"`
	DNS     DNSConfig     `yaml:"dns"`
	Logging LoggingConfig `yaml:"logging"`
}

type HostsConfig struct {
	// Path of the system hosts file. Empty selects the platform default.
	Path string `yaml:"path"`
}

type StorageConfig struct {
	// BlockListPath holds the persisted block list. Empty selects
	// ~/.focushield/blocklist.yaml.
	BlockListPath string `yaml:"blockListPath"`
}

type DNSConfig struct {
	// FlushCache controls the best-effort resolver cache flush after the
	// hosts file changes.
	FlushCache bool `yaml:"flushCache"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	AuditDir string `yaml:"auditDir,omitempty"`
}

// Load loads configuration from a YAML file, overlaying the defaults. With
// an empty path the default locations are probed and a missing file is fine.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DNS: DNSConfig{
			FlushCache: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	// If no path specified, try default locations
	if path == "" {
		for _, p := range []string{"./config.yaml", defaultConfigPath()} {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	// If we have a config file, load it
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() > utils.MaxConfigFileSize {
			return nil, fmt.Errorf("config file exceeds maximum size of %d bytes", utils.MaxConfigFileSize)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// DefaultBlockListPath is where the block list lives unless configured
// otherwise.
func DefaultBlockListPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".focushield-blocklist.yaml"
	}
	return filepath.Join(home, ".focushield", "blocklist.yaml")
}

// DefaultAuditDir is where audit logs are written unless configured
// otherwise.
func DefaultAuditDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".focushield-audit"
	}
	return filepath.Join(home, ".focushield", "audit")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".focushield", "config.yaml")
}
