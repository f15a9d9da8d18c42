package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the runtime configuration for the ganzhictl binaries: where the
// two static lookup tables live and how the output record is filled in.
type Config struct {
	AnchorTable   string `toml:"anchor_table"`
	ShishenMap    string `toml:"shishen_map"`
	DefaultStatus string `toml:"default_status"`
}

// Default returns the configuration used when no file overrides exist.
func Default() Config {
	return Config{
		AnchorTable:   "data/ganzhi_anchor.json",
		ShishenMap:    "data/shishen_map.json",
		DefaultStatus: "未打卡",
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadToml(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.AnchorTable) == "" {
		return fmt.Errorf("config missing anchor_table")
	}
	if strings.TrimSpace(cfg.ShishenMap) == "" {
		return fmt.Errorf("config missing shishen_map")
	}
	return nil
}
