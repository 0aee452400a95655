// Package youtube acquires local audio files for YouTube videos by
// shelling out to yt-dlp.
package youtube

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// commandResult captures the output of one external command.
type commandResult struct {
	Stdout string
	Stderr string
}

// commandRunner abstracts process execution for testability. When
// onLine is non-nil it receives each stdout line as it is produced.
type commandRunner interface {
	Run(ctx context.Context, onLine func(line string), name string, args ...string) (commandResult, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, onLine func(string), name string, args ...string) (commandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if onLine == nil {
		var stdout strings.Builder
		cmd.Stdout = &stdout
		err := cmd.Run()
		return commandResult{Stdout: stdout.String(), Stderr: stderr.String()}, err
	}

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return commandResult{}, err
	}
	if err := cmd.Start(); err != nil {
		return commandResult{}, err
	}

	var stdout strings.Builder
	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		line := scanner.Text()
		stdout.WriteString(line)
		stdout.WriteByte('\n')
		onLine(line)
	}

	err = cmd.Wait()
	return commandResult{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// Downloader fetches video metadata and extracts audio via yt-dlp,
// using the configured ffmpeg for the mp3 conversion.
type Downloader struct {
	ytdlpPath  string
	ffmpegPath string
	runner     commandRunner
	stat       func(string) (os.FileInfo, error)
	logger     *slog.Logger
}

// NewDownloader builds a Downloader that runs yt-dlp from PATH.
func NewDownloader(ffmpegPath string, logger *slog.Logger) *Downloader {
	return &Downloader{
		ytdlpPath:  "yt-dlp",
		ffmpegPath: ffmpegPath,
		runner:     execRunner{},
		stat:       os.Stat,
		logger:     logger,
	}
}

// Title returns the video title, sanitized for use as a file name.
func (d *Downloader) Title(ctx context.Context, videoID string) (string, error) {
	res, err := d.runner.Run(ctx, nil, d.ytdlpPath,
		"--print", "title",
		"--skip-download",
		"--no-warnings",
		WatchURL(videoID),
	)
	if err != nil {
		return "", fmt.Errorf("fetching video title: %s", commandFailure(res, err))
	}

	title := sanitizeTitle(res.Stdout)
	if title == "" {
		return "", fmt.Errorf("video %s has no usable title", videoID)
	}
	return title, nil
}

// DownloadAudio extracts the video's audio track as mp3 at outputPath,
// reporting download percentages to onProgress as yt-dlp emits them.
func (d *Downloader) DownloadAudio(ctx context.Context, videoID, outputPath string, onProgress func(percent int)) error {
	// yt-dlp appends the final extension itself.
	template := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".%(ext)s"

	d.logger.Info("downloading audio", "video_id", videoID, "output", outputPath)

	var onLine func(string)
	if onProgress != nil {
		onLine = func(line string) {
			if percent, ok := parseDownloadPercent(line); ok {
				onProgress(percent)
			}
		}
	}

	res, err := d.runner.Run(ctx, onLine, d.ytdlpPath,
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"--ffmpeg-location", d.ffmpegPath,
		"--output", template,
		"--newline",
		"--progress",
		"--no-warnings",
		WatchURL(videoID),
	)
	if err != nil {
		return fmt.Errorf("yt-dlp failed: %s", commandFailure(res, err))
	}

	if _, err := d.stat(outputPath); err != nil {
		return fmt.Errorf("yt-dlp finished but %s was not created: %w", outputPath, err)
	}
	return nil
}

// parseDownloadPercent extracts the percentage from a yt-dlp progress
// line, e.g. "[download]  42.3% of 10.00MiB at 1.20MiB/s".
func parseDownloadPercent(line string) (int, bool) {
	if !strings.HasPrefix(line, "[download]") {
		return 0, false
	}
	for _, field := range strings.Fields(line) {
		if !strings.HasSuffix(field, "%") {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
		if err != nil {
			return 0, false
		}
		return int(value), true
	}
	return 0, false
}

// commandFailure folds stderr into the error message so failures are
// diagnosable from the log alone.
func commandFailure(res commandResult, err error) string {
	stderr := strings.TrimSpace(res.Stderr)
	if stderr == "" {
		return err.Error()
	}
	lines := strings.Split(stderr, "\n")
	return fmt.Sprintf("%v: %s", err, lines[len(lines)-1])
}

// sanitizeTitle keeps letters, digits, spaces, hyphens, and underscores.
func sanitizeTitle(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
