package review

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Theme        string `yaml:"theme"`
	ReduceMotion bool   `yaml:"reduce_motion"`
	LogFile      string `yaml:"log_file"`

	// Demo timing knobs, in milliseconds. Zero means the defaults below.
	ProcessingDelayMS int `yaml:"processing_delay_ms"`
	HighlightMS       int `yaml:"highlight_ms"`
	CopiedNoticeMS    int `yaml:"copied_notice_ms"`
}

func DefaultConfig() Config {
	return Config{
		Theme:             "porcelain",
		ProcessingDelayMS: 4000,
		HighlightMS:       3000,
		CopiedNoticeMS:    2000,
	}
}

func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "genie-review", "config.yaml")
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Theme == "" {
		cfg.Theme = "porcelain"
	}
	if cfg.ProcessingDelayMS <= 0 {
		cfg.ProcessingDelayMS = 4000
	}
	if cfg.HighlightMS <= 0 {
		cfg.HighlightMS = 3000
	}
	if cfg.CopiedNoticeMS <= 0 {
		cfg.CopiedNoticeMS = 2000
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c Config) ProcessingDelay() time.Duration {
	return time.Duration(c.ProcessingDelayMS) * time.Millisecond
}

func (c Config) HighlightDuration() time.Duration {
	return time.Duration(c.HighlightMS) * time.Millisecond
}

func (c Config) CopiedNotice() time.Duration {
	return time.Duration(c.CopiedNoticeMS) * time.Millisecond
}
