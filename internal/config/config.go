package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/marcus/scout/internal/models"
)

const configFile = ".scout/config.json"

// DefaultPageSize is the roster page size used when none is configured.
const DefaultPageSize = 25

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// GetPageSize returns the configured roster page size, falling back to
// DefaultPageSize for zero or negative values.
func GetPageSize(baseDir string) (int, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return 0, err
	}
	if cfg.PageSize <= 0 {
		return DefaultPageSize, nil
	}
	return cfg.PageSize, nil
}

// SetPageSize persists the roster page size
func SetPageSize(baseDir string, size int) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.PageSize = size
	return Save(baseDir, cfg)
}

// GetSort returns the persisted roster sort column and direction
func GetSort(baseDir string) (key, dir string, err error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", "", err
	}
	return cfg.SortKey, cfg.SortDir, nil
}

// SetSort persists the roster sort column and direction
func SetSort(baseDir string, key, dir string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.SortKey = key
	cfg.SortDir = dir
	return Save(baseDir, cfg)
}

// ClearSort resets the roster to its natural order
func ClearSort(baseDir string) error {
	return SetSort(baseDir, "", "")
}

// GetIncludeRetired returns whether retired players appear in listings
func GetIncludeRetired(baseDir string) (bool, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return false, err
	}
	return cfg.IncludeRetired, nil
}

// SetIncludeRetired persists whether retired players appear in listings
func SetIncludeRetired(baseDir string, include bool) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.IncludeRetired = include
	return Save(baseDir, cfg)
}
