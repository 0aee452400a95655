package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{FFmpegPath: "/usr/bin/ffmpeg"}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "ASSEMBLYAI_API_KEY") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateRequiresExistingFFmpeg(t *testing.T) {
	cfg := &Config{APIKey: "k", FFmpegPath: filepath.Join(t.TempDir(), "nope")}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "ffmpeg not found") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidatePassesWithCredentials(t *testing.T) {
	ffmpeg := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(ffmpeg, []byte("#!/bin/sh"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{APIKey: "k", FFmpegPath: ffmpeg}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
