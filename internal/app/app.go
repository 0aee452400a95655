package app

import (
	"log/slog"
	"time"

	"github.com/matt11seven/tr/config"
	"github.com/matt11seven/tr/internal/assemblyai"
	"github.com/matt11seven/tr/internal/domain/transcript/usecases"
	"github.com/matt11seven/tr/internal/youtube"
)

type App struct {
	Transcribe *usecases.Transcribe
	Download   *usecases.Download

	client *assemblyai.Client
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	downloader := youtube.NewDownloader(cfg.FFmpegPath, logger)

	client := assemblyai.New(cfg.APIKey,
		assemblyai.WithPollInterval(cfg.PollInterval),
		assemblyai.WithTimeout(cfg.Timeout),
		assemblyai.WithLogger(logger),
	)

	transcribe := &usecases.Transcribe{
		Downloader:     downloader,
		Client:         client,
		AudiosDir:      cfg.AudiosDir,
		TranscriptsDir: cfg.TranscriptsDir,
		LanguageCode:   cfg.LanguageCode,
		Logger:         logger,
		Now:            time.Now,
	}

	download := &usecases.Download{
		Downloader: downloader,
		Logger:     logger,
	}

	return &App{
		Transcribe: transcribe,
		Download:   download,
		client:     client,
	}
}

// Close releases the HTTP session owned by the transcription client.
func (a *App) Close() {
	a.client.Close()
}
