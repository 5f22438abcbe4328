package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/sidebarkit/internal/config"
)

// loadConfig reads the config file named by the flags, or the default one,
// and applies the command line overrides on top.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := strings.TrimSpace(flags.configPath)
	if path == "" {
		def, err := config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = def
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.backend != "" {
		cfg.Storage.Backend = strings.ToLower(flags.backend)
	}
	if flags.stateFile != "" {
		cfg.Storage.Path = flags.stateFile
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if cfg.Storage.Backend == config.BackendMemory {
		cfg.Storage.Watch = false
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
