package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/janekbaraniewski/daogrowth/internal/dataset"
)

// DAOGROWTH_DATA_DIR overrides the data directory from the config file.
const dataDirEnvVar = "DAOGROWTH_DATA_DIR"

type ChartConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	DateFormat string `json:"date_format"`
}

type SeriesConfig struct {
	YStep        float64 `json:"y_step"`
	TickFontSize float64 `json:"tick_font_size"`
}

type ExportConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Config struct {
	DataDir string       `json:"data_dir"`
	Chart   ChartConfig  `json:"chart"`
	Active  SeriesConfig `json:"active"`
	New     SeriesConfig `json:"new"`
	Export  ExportConfig `json:"export"`
}

func DefaultConfig() Config {
	return Config{
		DataDir: dataset.DefaultDataDir,
		Chart: ChartConfig{
			Width:      100,
			Height:     30,
			DateFormat: "Jan, 2006",
		},
		Active: SeriesConfig{YStep: 10, TickFontSize: 14},
		New:    SeriesConfig{YStep: 100, TickFontSize: 12},
		Export: ExportConfig{Width: 1280, Height: 720},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "daogrowth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "daogrowth")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	cfg, err := LoadFrom(ConfigPath())
	if err != nil {
		return cfg, err
	}
	if dir := strings.TrimSpace(os.Getenv(dataDirEnvVar)); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	normalize(&cfg)
	return cfg, nil
}

func normalize(cfg *Config) {
	def := DefaultConfig()
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.Chart.Width <= 0 {
		cfg.Chart.Width = def.Chart.Width
	}
	if cfg.Chart.Height <= 0 {
		cfg.Chart.Height = def.Chart.Height
	}
	if cfg.Chart.DateFormat == "" {
		cfg.Chart.DateFormat = def.Chart.DateFormat
	}
	if cfg.Active.YStep <= 0 {
		cfg.Active.YStep = def.Active.YStep
	}
	if cfg.Active.TickFontSize <= 0 {
		cfg.Active.TickFontSize = def.Active.TickFontSize
	}
	if cfg.New.YStep <= 0 {
		cfg.New.YStep = def.New.YStep
	}
	if cfg.New.TickFontSize <= 0 {
		cfg.New.TickFontSize = def.New.TickFontSize
	}
	if cfg.Export.Width <= 0 {
		cfg.Export.Width = def.Export.Width
	}
	if cfg.Export.Height <= 0 {
		cfg.Export.Height = def.Export.Height
	}
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
