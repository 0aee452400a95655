package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt11seven/tr/internal/domain/transcript"
)

func TestDownloadExecuteCreatesParentDirectory(t *testing.T) {
	dl := &fakeDownloader{}
	uc := &Download{Downloader: dl, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	var progress []int
	out := filepath.Join(t.TempDir(), "nested", "audio.mp3")
	if err := uc.Execute(context.Background(), "abc123", out, func(p int) { progress = append(progress, p) }); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("audio file missing: %v", err)
	}
	if dl.downloadCalls != 1 {
		t.Fatalf("download calls = %d, want 1", dl.downloadCalls)
	}
	if len(progress) == 0 {
		t.Fatal("download progress was not reported")
	}
}

func TestDownloadExecuteWrapsFailureAsDownloadError(t *testing.T) {
	dl := &fakeDownloader{downloadErr: errors.New("network gone")}
	uc := &Download{Downloader: dl, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := uc.Execute(context.Background(), "abc123", filepath.Join(t.TempDir(), "audio.mp3"), nil)
	if transcript.KindOf(err) != transcript.KindDownload {
		t.Fatalf("error kind = %q, err = %v", transcript.KindOf(err), err)
	}
}
