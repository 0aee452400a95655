package usecases

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/matt11seven/tr/internal/domain/transcript"
)

// TranscriptionClient drives the remote transcription service through
// its three-phase protocol.
type TranscriptionClient interface {
	Upload(ctx context.Context, audioPath string) (string, error)
	Submit(ctx context.Context, audioURL, languageCode string) (string, error)
	WaitForCompletion(ctx context.Context, jobID string, onProgress func(percent int)) (*transcript.Transcript, error)
}

// AudioDownloader acquires a local audio file for a video.
type AudioDownloader interface {
	Title(ctx context.Context, videoID string) (string, error)
	DownloadAudio(ctx context.Context, videoID, outputPath string, onProgress func(percent int)) error
}

// Transcribe runs the full pipeline for one video: acquire audio,
// upload, submit, poll to completion, persist the formatted outputs,
// and release the audio file.
type Transcribe struct {
	Downloader     AudioDownloader
	Client         TranscriptionClient
	AudiosDir      string
	TranscriptsDir string
	LanguageCode   string
	Logger         *slog.Logger
	Now            func() time.Time
}

// TranscribeResult reports where the run left its artifacts.
type TranscribeResult struct {
	Title        string
	DetailedPath string
	SimplePath   string
	Content      string // the detailed transcript document
	Reused       bool   // true when an existing transcript short-circuited the run
}

// Options tunes one Execute call.
type Options struct {
	// Force re-runs the pipeline even when a transcript already exists.
	Force bool
	// OnStage is called when the pipeline enters the "downloading" and
	// "transcribing" phases.
	OnStage func(stage string)
	// OnDownloadProgress receives audio download percentages.
	OnDownloadProgress func(percent int)
	// OnProgress receives transcription progress percentages.
	OnProgress func(percent int)
}

func emitStage(onStage func(string), stage string) {
	if onStage != nil {
		onStage(stage)
	}
}

// Execute transcribes one video. A pre-existing detailed transcript for
// the same title short-circuits the whole pipeline: its content is
// returned and no download, upload, or polling happens.
func (t *Transcribe) Execute(ctx context.Context, videoID string, opts Options) (*TranscribeResult, error) {
	title, err := t.Downloader.Title(ctx, videoID)
	if err != nil {
		return nil, transcript.NewDownloadError("resolving video title", err)
	}

	detailedPath := filepath.Join(t.TranscriptsDir, title+".txt")
	simplePath := filepath.Join(t.TranscriptsDir, title+"_simples.txt")

	if content, err := os.ReadFile(detailedPath); err == nil && !opts.Force {
		t.Logger.Info("transcript already exists, skipping", "path", detailedPath)
		return &TranscribeResult{
			Title:        title,
			DetailedPath: detailedPath,
			SimplePath:   simplePath,
			Content:      string(content),
			Reused:       true,
		}, nil
	}

	for _, dir := range []string{t.AudiosDir, t.TranscriptsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, transcript.NewDownloadError("creating directory "+dir, err)
		}
	}

	audioPath := filepath.Join(t.AudiosDir, title+".mp3")
	if _, err := os.Stat(audioPath); err != nil {
		emitStage(opts.OnStage, "downloading")
		if err := t.Downloader.DownloadAudio(ctx, videoID, audioPath, opts.OnDownloadProgress); err != nil {
			return nil, transcript.NewDownloadError("downloading audio", err)
		}
	}

	// The audio file is only needed for the upload; remove it on every
	// exit path from here on. A failed removal does not change the
	// run's outcome.
	defer func() {
		if err := os.Remove(audioPath); err != nil {
			t.Logger.Warn("could not remove audio file", "path", audioPath, "error", err)
		} else {
			t.Logger.Info("audio file removed", "path", audioPath)
		}
	}()

	emitStage(opts.OnStage, "transcribing")

	uploadURL, err := t.Client.Upload(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	jobID, err := t.Client.Submit(ctx, uploadURL, t.LanguageCode)
	if err != nil {
		return nil, err
	}

	result, err := t.Client.WaitForCompletion(ctx, jobID, opts.OnProgress)
	if err != nil {
		return nil, err
	}

	meta := transcript.Metadata{
		Title:       title,
		URL:         "https://www.youtube.com/watch?v=" + videoID,
		GeneratedAt: t.Now(),
	}

	detailed := transcript.FormatDetailed(result, meta)
	if err := os.WriteFile(detailedPath, []byte(detailed), 0o644); err != nil {
		return nil, transcript.NewPipelineError("saving detailed transcript", err)
	}
	if err := os.WriteFile(simplePath, []byte(transcript.FormatBySpeaker(result)), 0o644); err != nil {
		return nil, transcript.NewPipelineError("saving simplified transcript", err)
	}

	t.Logger.Info("transcripts saved", "detailed", detailedPath, "simple", simplePath)

	return &TranscribeResult{
		Title:        title,
		DetailedPath: detailedPath,
		SimplePath:   simplePath,
		Content:      detailed,
	}, nil
}
