package usecases

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/matt11seven/tr/internal/domain/transcript"
)

// Download acquires a video's audio without transcribing it. This is
// the non-interactive mode used by external callers.
type Download struct {
	Downloader AudioDownloader
	Logger     *slog.Logger
}

// Execute downloads the audio of videoID to outputPath, creating the
// parent directory if needed.
func (d *Download) Execute(ctx context.Context, videoID, outputPath string, onProgress func(percent int)) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return transcript.NewDownloadError("creating directory "+dir, err)
		}
	}

	d.Logger.Info("starting download", "video_id", videoID, "output", outputPath)

	if err := d.Downloader.DownloadAudio(ctx, videoID, outputPath, onProgress); err != nil {
		return transcript.NewDownloadError("downloading audio", err)
	}
	return nil
}
