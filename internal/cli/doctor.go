package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/matt11seven/tr/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			ok := true

			if _, err := exec.LookPath("yt-dlp"); err != nil {
				f.SetupCheck("yt-dlp", false, "not found. Install with: pip install yt-dlp")
				ok = false
			} else {
				f.SetupCheck("yt-dlp", true, "installed")
			}

			if deps.Config.FFmpegPath == "" {
				f.SetupCheck("ffmpeg", false, "FFMPEG_PATH not set. Add it to .env")
				ok = false
			} else if _, err := os.Stat(deps.Config.FFmpegPath); err != nil {
				f.SetupCheck("ffmpeg", false, "not found at "+deps.Config.FFmpegPath)
				ok = false
			} else {
				f.SetupCheck("ffmpeg", true, deps.Config.FFmpegPath)
			}

			if deps.Config.APIKey != "" {
				f.SetupCheck("AssemblyAI API key", true, "configured")
			} else {
				f.SetupCheck("AssemblyAI API key", false, "not set. Set ASSEMBLYAI_API_KEY in .env")
				ok = false
			}

			f.SetupCheck("Audios directory", true, deps.Config.AudiosDir)
			f.SetupCheck("Transcripts directory", true, deps.Config.TranscriptsDir)

			if ok {
				f.Success("\nAll prerequisites met. Ready to transcribe!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
