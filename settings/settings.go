// Package settings persists editor configuration as JSON under the user's
// home directory and lets the environment override credentials.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/bdurukan/texxteditor/stats"
)

const (
	configDirName  = ".texxteditor"
	configFileName = "config.json"
)

// Settings is the on-disk configuration shape.
type Settings struct {
	APIKey         string            `json:"api_key"`
	Shortcuts      map[string]string `json:"shortcuts"`
	Theme          string            `json:"theme"`
	WordsPerPage   int               `json:"words_per_page"`
	WordsPerMinute int               `json:"words_per_minute"`
}

// envOverrides are applied on top of the stored settings after load. A .env
// file in the working directory is honored the same way the environment is.
type envOverrides struct {
	APIKey string `envconfig:"OPENAI_API_KEY"`
}

// Defaults mirror a fresh install.
func Defaults() Settings {
	return Settings{
		Shortcuts: map[string]string{
			"transcribe": "f9",
			"cut":        "ctrl+x",
			"copy":       "ctrl+c",
			"paste":      "ctrl+v",
			"save":       "ctrl+s",
			"open":       "ctrl+o",
			"new":        "ctrl+n",
		},
		Theme:          "light",
		WordsPerPage:   stats.WordsPerPage,
		WordsPerMinute: stats.WordsPerMinute,
	}
}

// Manager loads, mutates, and saves one settings file.
type Manager struct {
	path     string
	settings Settings
}

// Load reads config from dir (the default location when dir is empty). A
// missing or unreadable file falls back to defaults rather than failing;
// first runs have no config yet.
func Load(dir string) (*Manager, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home: %w", err)
		}
		dir = filepath.Join(home, configDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	m := &Manager{
		path:     filepath.Join(dir, configFileName),
		settings: Defaults(),
	}

	if data, err := os.ReadFile(m.path); err == nil {
		loaded := Defaults()
		if err := json.Unmarshal(data, &loaded); err == nil {
			m.settings = loaded
		}
	}
	m.applyEnv()
	return m, nil
}

func (m *Manager) applyEnv() {
	_ = godotenv.Load()

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return
	}
	if env.APIKey != "" {
		m.settings.APIKey = env.APIKey
	}
}

// Save writes the current settings atomically (temp file + rename).
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current state.
func (m *Manager) Settings() Settings {
	s := m.settings
	s.Shortcuts = make(map[string]string, len(m.settings.Shortcuts))
	for k, v := range m.settings.Shortcuts {
		s.Shortcuts[k] = v
	}
	return s
}

// APIKey satisfies transcriber.KeyProvider.
func (m *Manager) APIKey() string {
	return m.settings.APIKey
}

// SetAPIKey stores and persists a new key.
func (m *Manager) SetAPIKey(key string) error {
	m.settings.APIKey = key
	return m.Save()
}

// Shortcut returns the binding for an action, empty when unbound.
func (m *Manager) Shortcut(action string) string {
	return m.settings.Shortcuts[action]
}

// SetShortcut rebinds an action and persists the change.
func (m *Manager) SetShortcut(action, combo string) error {
	if m.settings.Shortcuts == nil {
		m.settings.Shortcuts = map[string]string{}
	}
	m.settings.Shortcuts[action] = combo
	return m.Save()
}

// WordsPerPage is the configured page-estimate divisor.
func (m *Manager) WordsPerPage() int {
	if m.settings.WordsPerPage <= 0 {
		return stats.WordsPerPage
	}
	return m.settings.WordsPerPage
}

// WordsPerMinute is the configured reading-speed divisor.
func (m *Manager) WordsPerMinute() int {
	if m.settings.WordsPerMinute <= 0 {
		return stats.WordsPerMinute
	}
	return m.settings.WordsPerMinute
}
