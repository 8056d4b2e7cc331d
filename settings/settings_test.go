package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("OPENAI_API_KEY")

	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s := m.Settings()
	if s.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", s.APIKey)
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q, want light", s.Theme)
	}
	if m.Shortcut("transcribe") != "f9" {
		t.Errorf("transcribe shortcut = %q", m.Shortcut("transcribe"))
	}
	if m.WordsPerPage() != 500 || m.WordsPerMinute() != 200 {
		t.Errorf("divisors: %d, %d", m.WordsPerPage(), m.WordsPerMinute())
	}
}

func TestSaveAndReload(t *testing.T) {
	os.Unsetenv("OPENAI_API_KEY")
	dir := t.TempDir()

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := m.SetAPIKey("sk-stored"); err != nil {
		t.Fatalf("SetAPIKey: %v", err)
	}
	if err := m.SetShortcut("transcribe", "f12"); err != nil {
		t.Fatalf("SetShortcut: %v", err)
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.APIKey() != "sk-stored" {
		t.Errorf("APIKey = %q", reloaded.APIKey())
	}
	if reloaded.Shortcut("transcribe") != "f12" {
		t.Errorf("shortcut = %q", reloaded.Shortcut("transcribe"))
	}
}

func TestCorruptFileFallsBack(t *testing.T) {
	os.Unsetenv("OPENAI_API_KEY")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Settings().Theme != "light" {
		t.Errorf("corrupt file should yield defaults, got %+v", m.Settings())
	}
}

func TestEnvOverridesStoredKey(t *testing.T) {
	dir := t.TempDir()

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := m.SetAPIKey("sk-stored"); err != nil {
		t.Fatalf("SetAPIKey: %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-env")
	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.APIKey() != "sk-env" {
		t.Errorf("APIKey = %q, want env override", reloaded.APIKey())
	}
}

func TestSaveIsWellFormedJSON(t *testing.T) {
	os.Unsetenv("OPENAI_API_KEY")
	dir := t.TempDir()

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if s.WordsPerPage != 500 {
		t.Errorf("round-tripped WordsPerPage = %d", s.WordsPerPage)
	}
}
