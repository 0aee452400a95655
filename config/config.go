package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	defaultAudiosDir      = "audios"
	defaultTranscriptsDir = "transcricoes"
	defaultLanguageCode   = "pt"
	defaultPollInterval   = 30 * time.Second
	defaultTimeout        = 10 * time.Hour
)

type Config struct {
	APIKey         string // AssemblyAI credential
	FFmpegPath     string // ffmpeg binary used by yt-dlp for audio extraction
	AudiosDir      string
	TranscriptsDir string
	LanguageCode   string
	PollInterval   time.Duration
	Timeout        time.Duration
}

type fileConfig struct {
	AudiosDir           string `toml:"audios_dir"`
	TranscriptsDir      string `toml:"transcripts_dir"`
	LanguageCode        string `toml:"language_code"`
	PollIntervalSeconds int    `toml:"poll_interval_seconds"`
	TimeoutSeconds      int    `toml:"timeout_seconds"`
}

// Load builds the configuration from defaults, an optional config.toml,
// a .env file in the working directory, and environment variables, in
// increasing priority. Missing credentials are reported by Validate,
// not here, so commands like doctor can still run.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AudiosDir:      defaultAudiosDir,
		TranscriptsDir: defaultTranscriptsDir,
		LanguageCode:   defaultLanguageCode,
		PollInterval:   defaultPollInterval,
		Timeout:        defaultTimeout,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
		if fc.AudiosDir != "" {
			cfg.AudiosDir = fc.AudiosDir
		}
		if fc.TranscriptsDir != "" {
			cfg.TranscriptsDir = fc.TranscriptsDir
		}
		if fc.LanguageCode != "" {
			cfg.LanguageCode = fc.LanguageCode
		}
		if fc.PollIntervalSeconds > 0 {
			cfg.PollInterval = time.Duration(fc.PollIntervalSeconds) * time.Second
		}
		if fc.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
		}
	}

	cfg.APIKey = os.Getenv("ASSEMBLYAI_API_KEY")
	cfg.FFmpegPath = os.Getenv("FFMPEG_PATH")

	return cfg, nil
}

// Validate enforces the credentials the transcription pipeline cannot
// run without. Called by the commands that need them; absence is a
// startup error, never a mid-pipeline one.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY not set: add it to .env or the environment")
	}
	if c.FFmpegPath == "" {
		return fmt.Errorf("FFMPEG_PATH not set: add it to .env or the environment")
	}
	if _, err := os.Stat(c.FFmpegPath); err != nil {
		return fmt.Errorf("ffmpeg not found at %s: %w", c.FFmpegPath, err)
	}
	return nil
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "tr")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "tr")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
