package logging

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// restoreLogger puts the standard logger back after a test
func restoreLogger(t *testing.T) {
	t.Helper()
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupDisabled(t *testing.T) {
	restoreLogger(t)

	logFile, err := Setup(false, t.TempDir(), nil)
	if err != nil || logFile != nil {
		t.Errorf("Expected nil file and error when disabled, got %v, %v", logFile, err)
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupDisabledFallback(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	if _, err := Setup(false, t.TempDir(), &buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	log.Printf("audio: hello")
	if !strings.Contains(buf.String(), "audio: hello") {
		t.Errorf("Expected fallback to receive log output, got %q", buf.String())
	}
}

func TestSetupEnabled(t *testing.T) {
	restoreLogger(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logFile, err := Setup(true, dir, nil)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	defer logFile.Close()

	log.Println("Test log message")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") {
		t.Errorf("Expected log file to contain the message, got %q", data)
	}
}

func TestSetupRotation(t *testing.T) {
	restoreLogger(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile, err := Setup(true, dir, nil)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupSmallFileNotRotated(t *testing.T) {
	restoreLogger(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	logFile, err := Setup(true, dir, nil)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	logFile.Close()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected a single log file, got %d entries", len(entries))
	}
	data, _ := os.ReadFile(logPath)
	if !strings.HasPrefix(string(data), "previous run") {
		t.Error("Expected existing log to be appended to")
	}
}

func TestSetupUnwritableDir(t *testing.T) {
	restoreLogger(t)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logFile, err := Setup(true, filepath.Join(blocker, "logs"), &buf)
	if err == nil {
		logFile.Close()
		t.Fatal("Expected error when the log dir cannot be created")
	}
	if log.Writer() != &buf {
		t.Error("Expected logger left on fallback after failure")
	}
}
