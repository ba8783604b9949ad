package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/warfront/internal/config"
	"github.com/felixgeelhaar/warfront/internal/log"
	"github.com/felixgeelhaar/warfront/internal/session"
)

// bootstrap loads configuration, installs the default logger, and builds a
// session manager restored from the credential store. Every command goes
// through here so overrides behave the same everywhere.
func bootstrap(cmd *cobra.Command) (config.Config, *session.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.APIURL = apiURL
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logCfg.Format = log.ParseFormat(cfg.LogFormat)
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	store := session.NewFileStore(cfg.DataDir)
	manager := session.NewManagerForURL(store, cfg.APIURL)
	if err := manager.Restore(); err != nil {
		// A corrupt credential file should not block the CLI.
		logger.WithError(err).Warn("could not restore saved session")
	}

	return cfg, manager, nil
}

// requireSession fails fast when a command needs an authenticated commander.
func requireSession(manager *session.Manager) (session.Session, error) {
	sess, ok := manager.Current()
	if !ok {
		return session.Session{}, fmt.Errorf("not logged in, run 'warfront auth login' first")
	}
	return sess, nil
}
