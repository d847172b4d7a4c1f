package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGot, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve got dir symlink failed: %v", err)
	}
	expectedDir := filepath.Join(realTmpDir, defaultDir)
	if realGot != expectedDir {
		t.Fatalf("unexpected log dir: got=%s expected=%s", realGot, expectedDir)
	}
	if filepath.Base(got) != defaultFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("expected log dir to be created: %v", err)
	}
}

func TestNewReleaseWritesToConfiguredFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Options{
		Dir:      tmpDir,
		Filename: "release.log",
	}
	log := New("release", cfg)
	log.Info("release-log-test")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), "release-log-test") {
		t.Fatalf("expected log content to contain message, got=%s", string(content))
	}
}

func TestNewDebugDoesNotWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Options{
		Dir:      tmpDir,
		Filename: "debug.log",
	}
	log := New("debug", cfg)
	log.Info("debug-log-test")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestResolveLevelPrefersExplicitLevel(t *testing.T) {
	if got := resolveLevel("debug", "warn"); got.String() != "warn" {
		t.Fatalf("explicit level should win, got=%s", got)
	}
	if got := resolveLevel("release", ""); got.String() != "info" {
		t.Fatalf("release default should be info, got=%s", got)
	}
	if got := resolveLevel("debug", "bogus"); got.String() != "debug" {
		t.Fatalf("invalid level should fall back to mode, got=%s", got)
	}
}

func TestNewReleaseHonorsConfiguredLevel(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "level.log", Level: "error"})
	log.Info("suppressed-info")
	log.Error("kept-error")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "level.log"))
	if err != nil {
		t.Fatalf("read level log failed: %v", err)
	}
	if strings.Contains(string(content), "suppressed-info") {
		t.Fatalf("info entry should be filtered, got=%s", string(content))
	}
	if !strings.Contains(string(content), "kept-error") {
		t.Fatalf("error entry should be written, got=%s", string(content))
	}
}

func TestParseGormLevel(t *testing.T) {
	cases := map[string]string{"silent": "1", "error": "2", "": "3", "info": "4"}
	for raw, want := range cases {
		if got := fmt.Sprint(int(parseGormLevel(raw))); got != want {
			t.Fatalf("parseGormLevel(%q)=%s want %s", raw, got, want)
		}
	}
}

func TestStdLoggerWritesThroughGlobalLogger(t *testing.T) {
	previous := L
	t.Cleanup(func() { L = previous })

	tmpDir := t.TempDir()
	L = New("release", Options{Dir: tmpDir, Filename: "std.log"})
	StdLogger().Printf("database init failed: %s", "boom")
	_ = L.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "std.log"))
	if err != nil {
		t.Fatalf("read std log failed: %v", err)
	}
	if !strings.Contains(string(content), "database init failed: boom") {
		t.Fatalf("std logger output missing, got=%s", string(content))
	}
}
