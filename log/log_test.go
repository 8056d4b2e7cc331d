package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/texxt-logs")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/texxt-logs" {
		t.Errorf("got %q, want /tmp/texxt-logs", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(wd, "logs"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("TEXXTEDITOR_LOG_PATH", "/tmp/texxt-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/texxt-env-log" {
		t.Errorf("got %q, want /tmp/texxt-env-log", got)
	}
}

func TestInitCreatesFiles(t *testing.T) {
	tmp := setupLogDir(t)
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Info("hello from test")
	TranscriptionText("a transcript line")
	Close()

	diag, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatalf("read diagnostics: %v", err)
	}
	if !strings.Contains(string(diag), "hello from test") {
		t.Errorf("diagnostics missing message: %q", diag)
	}

	transcript, err := os.ReadFile(filepath.Join(tmp, "transcribe_log.txt"))
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if !strings.Contains(string(transcript), "a transcript line") {
		t.Errorf("transcript missing line: %q", transcript)
	}
}

func TestLoggingBeforeInitIsNoop(t *testing.T) {
	Close()
	// Must not panic with no files open.
	Info("dropped")
	Errorf("dropped %d", 1)
	TranscriptionText("dropped")
	Transcription(TranscriptionMetrics{TotalTimeMs: 1})
}
