package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

//go:embed editor.yaml
var defaultYAML []byte

type Config struct {
	History HistoryConfig `yaml:"history"`
	Editor  EditorConfig  `yaml:"editor"`
	Storage StorageConfig `yaml:"storage"`
	Preview PreviewConfig `yaml:"preview"`
}

type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

type EditorConfig struct {
	PasteOffset      int           `yaml:"paste_offset"`
	DeleteDelay      time.Duration `yaml:"delete_delay"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	ZoomMin          float64       `yaml:"zoom_min"`
	ZoomMax          float64       `yaml:"zoom_max"`
	ZoomStep         float64       `yaml:"zoom_step"`
	TileSize         int           `yaml:"tile_size"`
	ShowGrid         bool          `yaml:"show_grid"`
	ShowScanlines    bool          `yaml:"show_scanlines"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type PreviewConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// Default returns the embedded configuration.
func Default() Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path when path
// is not empty. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays data on the embedded defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal: %w", err)
		}
	}

	expanded, err := homedir.Expand(cfg.Storage.Path)
	if err != nil {
		return Config{}, fmt.Errorf("expand storage path: %w", err)
	}
	cfg.Storage.Path = expanded

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.History.MaxEntries < 1 {
		errs = append(errs, fmt.Errorf("history.max_entries must be positive, got %d", c.History.MaxEntries))
	}
	if c.Editor.PasteOffset <= 0 {
		errs = append(errs, fmt.Errorf("editor.paste_offset must be positive, got %d", c.Editor.PasteOffset))
	}
	if c.Editor.DeleteDelay < 0 {
		errs = append(errs, fmt.Errorf("editor.delete_delay must not be negative"))
	}
	if c.Editor.AutosaveInterval <= 0 {
		errs = append(errs, fmt.Errorf("editor.autosave_interval must be positive"))
	}
	if c.Editor.ZoomMin <= 0 || c.Editor.ZoomMax < c.Editor.ZoomMin {
		errs = append(errs, fmt.Errorf("editor zoom bounds invalid: [%v, %v]", c.Editor.ZoomMin, c.Editor.ZoomMax))
	}
	if c.Editor.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("editor.tile_size must be positive, got %d", c.Editor.TileSize))
	}
	return errors.Join(errs...)
}
