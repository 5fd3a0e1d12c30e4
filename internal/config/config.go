// Package config manages the .radikal deck directory and its configuration.
// It handles loading, saving, and initializing a deck; commands find the deck
// by walking up from the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/radikals/radikal/internal/i18n"
)

const (
	DeckDir        = ".radikal"
	ConfigFile     = "config"
	DatabaseFile   = "deck.db"
	AssetCacheFile = "assets.db"
)

// Config represents a deck's configuration.
type Config struct {
	Title    string `toml:"title"`
	Language string `toml:"language"` // "en" or "fa"
	Theme    string `toml:"theme"`    // "light" or "dark"
	Listen   string `toml:"listen"`   // presenter server address

	path string // path to the .radikal directory
}

// FindDeckRoot finds the .radikal directory by walking up from the current
// directory.
func FindDeckRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		deckPath := filepath.Join(dir, DeckDir)
		if info, err := os.Stat(deckPath); err == nil && info.IsDir() {
			return deckPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a radikal deck (or any parent up to root)")
		}
		dir = parent
	}
}

// Load loads the configuration from the .radikal directory.
func Load() (*Config, error) {
	deckPath, err := FindDeckRoot()
	if err != nil {
		return nil, err
	}
	return LoadFrom(deckPath)
}

// LoadFrom loads the configuration from an explicit .radikal directory.
func LoadFrom(deckPath string) (*Config, error) {
	configPath := filepath.Join(deckPath, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.path = deckPath
	cfg.applyDefaults()
	return &cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// DeckPath returns the path to the .radikal directory.
func (c *Config) DeckPath() string {
	return c.path
}

// DatabasePath returns the path to the sqlite document store.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.path, DatabaseFile)
}

// AssetCachePath returns the path to the bbolt asset cache.
func (c *Config) AssetCachePath() string {
	return filepath.Join(c.path, AssetCacheFile)
}

// Lang returns the configured language as an i18n language.
func (c *Config) Lang() i18n.Language {
	if c.Language == string(i18n.Farsi) {
		return i18n.Farsi
	}
	return i18n.English
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Radikal Presenter"
	}
	if c.Language == "" {
		c.Language = string(i18n.English)
	}
	if c.Theme == "" {
		c.Theme = "dark"
	}
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8460"
	}
}

// Initialize creates a new .radikal directory with initial configuration.
func Initialize(title string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return InitializeAt(cwd, title)
}

// InitializeAt creates a .radikal directory under the given base directory.
func InitializeAt(base, title string) (*Config, error) {
	deckPath := filepath.Join(base, DeckDir)

	// Check if already initialized
	if _, err := os.Stat(deckPath); err == nil {
		return nil, fmt.Errorf("radikal deck already exists")
	}

	if err := os.MkdirAll(deckPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", DeckDir, err)
	}

	cfg := &Config{
		Title: title,
		path:  deckPath,
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		// Cleanup on failure
		os.RemoveAll(deckPath)
		return nil, err
	}

	return cfg, nil
}
