package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	tests := []struct {
		name string
		file *os.File
		want bool
	}{
		{
			name: "nil file is not a terminal",
			file: nil,
			want: false,
		},
		{
			name: "regular file is not a terminal",
			file: f,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTerminal(tt.file); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTerminalHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	handler := NewTerminalHandler(f, slog.LevelInfo)

	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(DEBUG) = true, want false")
	}
	if !handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(INFO) = false, want true")
	}

	logger := slog.New(handler)
	logger.Debug("hidden message")
	logger.Info("window scanned", "bytes_read", 42, Since(time.Now()))

	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)

	if strings.Contains(out, "hidden message") {
		t.Errorf("output contains debug record: %q", out)
	}
	if !strings.Contains(out, "window scanned") {
		t.Errorf("output missing info record: %q", out)
	}
	if !strings.Contains(out, "bytes_read=42") {
		t.Errorf("output missing attribute: %q", out)
	}
	if !strings.Contains(out, "duration=") {
		t.Errorf("output missing duration: %q", out)
	}
	// Regular files never receive ANSI escapes
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output contains color escapes: %q", out)
	}
}
