package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closer, err := New(path, "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("hidden")
	logger.Info("food eaten", "length", 4)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "snake") || !strings.Contains(out, "food eaten") || !strings.Contains(out, "length=4") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
}

func TestNewDiscard(t *testing.T) {
	logger, closer, err := New("", "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, _, err := New("", "loud"); err == nil {
		t.Error("New() should reject unknown levels")
	}
}

func TestNewUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "snake.log")
	if _, _, err := New(path, "info"); err == nil {
		t.Error("New() should fail when the log directory does not exist")
	}
}
