package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/qiwen/ganzhictl/internal/config"
)

type fileConfig struct {
	AnchorTable   string `toml:"anchor_table"`
	ShishenMap    string `toml:"shishen_map"`
	DefaultStatus string `toml:"default_status"`
}

// loadRuntimeConfig layers file overrides onto the defaults. A missing
// config file is not an error; the defaults stand.
func loadRuntimeConfig(path string) (config.Config, error) {
	cfg := config.Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return config.Config{}, fmt.Errorf("load ganzhictl config: %w", err)
	}

	if meta.IsDefined("anchor_table") {
		if v := strings.TrimSpace(raw.AnchorTable); v != "" {
			cfg.AnchorTable = v
		}
	}

	if meta.IsDefined("shishen_map") {
		if v := strings.TrimSpace(raw.ShishenMap); v != "" {
			cfg.ShishenMap = v
		}
	}

	if meta.IsDefined("default_status") {
		cfg.DefaultStatus = raw.DefaultStatus
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
