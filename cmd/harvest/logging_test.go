package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, logFile, err := setupLogging(t.TempDir(), false)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}

	// A no-op logger must still be safe to use
	logger.Info().Msg("dropped")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := t.TempDir()

	logger, logFile, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(dir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	logger.Info().Str("session", "abc").Msg("test message")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	line := bytes.TrimSpace(data)

	var entry map[string]any
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("Log line is not JSON: %v (%q)", err, line)
	}
	if entry["level"] != "info" || entry["message"] != "test message" || entry["session"] != "abc" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("Expected timestamp field")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()

	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
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
			break
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

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	_, logFile, err := setupLogging(t.TempDir(), true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}

func TestSetupLogging_ReportsFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{"directory path is a file", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "logs")
			if err := os.WriteFile(path, nil, 0644); err != nil {
				t.Fatalf("Failed to write blocker file: %v", err)
			}
			return path
		}},
		{"log path is a directory", func(t *testing.T) string {
			dir := t.TempDir()
			if err := os.Mkdir(filepath.Join(dir, logFileName), 0755); err != nil {
				t.Fatalf("Failed to create blocker directory: %v", err)
			}
			return dir
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logFile, err := setupLogging(tt.setup(t), true)
			if err == nil {
				t.Fatal("Expected an error from setupLogging")
			}
			if logFile != nil {
				logFile.Close()
				t.Error("Expected nil log file on failure")
			}
			// The fallback logger must still be usable
			logger.Info().Msg("dropped")
		})
	}
}
