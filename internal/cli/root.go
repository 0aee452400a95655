package cli

import (
	"github.com/spf13/cobra"

	"github.com/matt11seven/tr/config"
	"github.com/matt11seven/tr/internal/app"
	"github.com/matt11seven/tr/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tr",
		Short: "Transcribe YouTube videos",
		Long:  "A CLI tool that downloads the audio of a YouTube video with yt-dlp and transcribes it with speaker diarization using AssemblyAI.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewTranscribeCmd(deps))
	rootCmd.AddCommand(NewDownloadCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
