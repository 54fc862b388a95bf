package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSet_EmptyPathKeepsNop(t *testing.T) {
	before := Get()
	if err := Set("", "debug"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if Get() != before {
		t.Fatalf("logger replaced for empty path")
	}
}

func TestSet_WritesToFile(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	path := filepath.Join(t.TempDir(), "mdpane.log")
	if err := Set(path, "info"); err != nil {
		t.Fatalf("set: %v", err)
	}
	Get().Info("hello")
	Get().Debug("hidden")
	Flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log %q missing info entry", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("log %q contains debug entry below level", data)
	}
}

func TestSet_RejectsUnknownLevel(t *testing.T) {
	if err := Set(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
