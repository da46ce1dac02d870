// Package cmd implements the command-line interface for FocusShield. It
// provides subcommands for managing the block list, toggling focus mode and
// importing external blocklists.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"focushield/internal/audit"
	"focushield/internal/config"
	"focushield/internal/hosts"
	"focushield/internal/store"
	"focushield/internal/system"
)

// Env holds the collaborators shared by every subcommand.
type Env struct {
	Config  *config.Config
	Store   *store.Store
	System  *system.OS
	Manager *hosts.Manager
}

var env *Env

// Setup loads configuration and wires the shared collaborators. The root
// command calls it before any subcommand runs.
func Setup(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	logLevel := cfg.Logging.Level
	// Allow environment variable override
	if envLogLevel := os.Getenv("FOCUSHIELD_LOG_LEVEL"); envLogLevel != "" {
		logLevel = envLogLevel
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	auditDir := cfg.Logging.AuditDir
	if auditDir == "" {
		auditDir = config.DefaultAuditDir()
	}
	if err := audit.Initialize(auditDir); err != nil {
		logrus.WithError(err).Warn("Failed to initialize audit logging")
	}

	blockListPath := cfg.Storage.BlockListPath
	if blockListPath == "" {
		blockListPath = config.DefaultBlockListPath()
	}

	sys := system.New(cfg.Hosts.Path, cfg.DNS.FlushCache)
	env = &Env{
		Config:  cfg,
		Store:   store.New(blockListPath),
		System:  sys,
		Manager: hosts.NewManager(sys),
	}
	return nil
}
