package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/focusblock/internal/hosts"
)

// DefaultFile is read from the working directory when no explicit config
// path is given and the file exists.
const DefaultFile = "focusblock.yaml"

type RuntimeConfig struct {
	SessionMinutes       int    `yaml:"session_minutes" env:"FOCUSBLOCK_SESSION_MINUTES" env-default:"25"`
	HostsPath            string `yaml:"hosts_path" env:"FOCUSBLOCK_HOSTS_PATH"`
	RedirectIP           string `yaml:"redirect_ip" env:"FOCUSBLOCK_REDIRECT_IP" env-default:"127.0.0.1"`
	DBPath               string `yaml:"db_path" env:"FOCUSBLOCK_DB_PATH" env-default:"tasks.db"`
	LogDir               string `yaml:"log_dir" env:"FOCUSBLOCK_LOG_DIR"`
	DesktopNotifications bool   `yaml:"desktop_notifications" env:"FOCUSBLOCK_DESKTOP_NOTIFICATIONS" env-default:"false"`
	Debug                bool   `yaml:"debug" env:"FOCUSBLOCK_DEBUG" env-default:"false"`
}

// SessionSeconds is the countdown length used by the timer engine.
func (c RuntimeConfig) SessionSeconds() int {
	return c.SessionMinutes * 60
}

// Load reads path (or DefaultFile when path is empty and it exists), then
// overlays FOCUSBLOCK_* environment variables. Unset values fall back to
// defaults; the hosts path defaults to the platform location.
func Load(path string) (RuntimeConfig, error) {
	var cfg RuntimeConfig
	file := strings.TrimSpace(path)
	if file == "" && fileExists(DefaultFile) {
		file = DefaultFile
	}

	var err error
	if file != "" {
		err = cleanenv.ReadConfig(file, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("config: load %s: %w", describe(file), err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func (c RuntimeConfig) Validate() error {
	if c.SessionMinutes <= 0 {
		return fmt.Errorf("config: session_minutes must be positive, got %d", c.SessionMinutes)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("config: db_path is required")
	}
	return nil
}

// YAML renders the effective configuration.
func (c RuntimeConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *RuntimeConfig) applyDefaults() {
	if c.SessionMinutes == 0 {
		c.SessionMinutes = 25
	}
	if strings.TrimSpace(c.HostsPath) == "" {
		c.HostsPath = hosts.ResolvePath()
	}
	if strings.TrimSpace(c.RedirectIP) == "" {
		c.RedirectIP = "127.0.0.1"
	}
	if strings.TrimSpace(c.LogDir) == "" {
		c.LogDir = defaultLogDir()
	}
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".focusblock", "logs")
	}
	return filepath.Join(home, ".focusblock", "logs")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func describe(file string) string {
	if file == "" {
		return "environment"
	}
	return file
}
