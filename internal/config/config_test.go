package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for explicit missing config file")
		}

		// No explicit path and no default files present yields pure
		// defaults.
		cwd, _ := os.Getwd()
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatalf("chdir failed: %v", err)
		}
		defer os.Chdir(cwd)

		cfg, err = Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !cfg.DNS.FlushCache {
			t.Error("DNS flush should default to enabled")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("log level default: got %q, want info", cfg.Logging.Level)
		}
		if cfg.Hosts.Path != "" {
			t.Errorf("hosts path should default to empty (platform default), got %q", cfg.Hosts.Path)
		}
	})

	t.Run("OverlaysFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `hosts:
  path: /tmp/hosts-test
storage:
  blockListPath: /tmp/blocklist.yaml
dns:
  flushCache: false
logging:
  level: debug
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Hosts.Path != "/tmp/hosts-test" {
			t.Errorf("hosts path: got %q", cfg.Hosts.Path)
		}
		if cfg.Storage.BlockListPath != "/tmp/blocklist.yaml" {
			t.Errorf("block list path: got %q", cfg.Storage.BlockListPath)
		}
		if cfg.DNS.FlushCache {
			t.Error("flushCache should be disabled by the file")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("log level: got %q, want debug", cfg.Logging.Level)
		}
	})
}
