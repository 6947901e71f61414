// Package config loads runtime configuration: hard defaults, then an
// optional YAML file, then environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mindforge/mindforge/internal/survival"
)

// Config holds everything the binary needs to run.
type Config struct {
	StatePath   string   `yaml:"state_path"`
	ArchivePath string   `yaml:"archive_path"`
	BackupDirs  []string `yaml:"backup_dirs"`
	Port        string   `yaml:"port"`
	Deadline    string   `yaml:"deadline"`
	OllamaHost  string   `yaml:"ollama_host"`
	LLMModel    string   `yaml:"llm_model"`
	OpenAIKey   string   `yaml:"openai_key"`
	OpenAIBase  string   `yaml:"openai_base_url"`
	RemoteModel string   `yaml:"remote_model"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".mindforge")
	return Config{
		StatePath:   filepath.Join(base, "state.json"),
		ArchivePath: filepath.Join(base, "archive.db"),
		BackupDirs:  []string{filepath.Join(base, "backup")},
		Port:        "5000",
		Deadline:    "2026-02-14",
	}
}

// Load builds the config: defaults, the YAML file named by MINDFORGE_CONFIG
// (if set), then individual env overrides. A named but unreadable config
// file is an error; silence would hide a typo in the path.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("MINDFORGE_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.StatePath, "MINDFORGE_STATE")
	set(&cfg.ArchivePath, "MINDFORGE_ARCHIVE")
	set(&cfg.Port, "MINDFORGE_PORT")
	set(&cfg.Deadline, "MINDFORGE_DEADLINE")
	set(&cfg.OllamaHost, "OLLAMA_HOST")
	set(&cfg.LLMModel, "MINDFORGE_LLM_MODEL")
	set(&cfg.OpenAIKey, "OPENAI_API_KEY")
	set(&cfg.OpenAIBase, "OPENAI_BASE_URL")
	set(&cfg.RemoteModel, "MINDFORGE_REMOTE_MODEL")
}

// DeadlineTime parses the configured deadline date. Invalid values fall
// back to the built-in default rather than failing startup.
func (c Config) DeadlineTime() time.Time {
	t, err := time.ParseInLocation("2006-01-02", c.Deadline, time.Local)
	if err != nil {
		return survival.DefaultDeadline
	}
	return t
}
