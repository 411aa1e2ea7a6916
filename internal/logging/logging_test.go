package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInstall_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimasi.log")

	restore, err := Install("debug", path)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	zap.S().Named("test").Debugw("hello", "k", 1)
	restore()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "test") {
		t.Errorf("log output missing entry: %q", out)
	}
}

func TestInstall_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimasi.log")

	restore, err := Install("warn", path)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	zap.S().Info("quiet")
	zap.S().Warn("loud")
	restore()

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "quiet") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	logger, err := New("chatty", Stderr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Error("debug enabled for unparsable level")
	}
	if !logger.Core().Enabled(zap.InfoLevel) {
		t.Error("info disabled for unparsable level")
	}
}

func TestInstall_EmptyOutputIsNop(t *testing.T) {
	restore, err := Install("debug", "")
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	defer restore()
	if zap.L().Core().Enabled(zap.ErrorLevel) {
		t.Error("nop logger reports enabled levels")
	}
}
