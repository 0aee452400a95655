package cli

import (
	"github.com/spf13/cobra"

	"github.com/matt11seven/tr/internal/output"
)

func NewDownloadCmd(deps *Dependencies) *cobra.Command {
	var videoID string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download a video's audio without transcribing",
		Long:  "Download and extract the audio of a YouTube video to an explicit path.\nNon-interactive; intended for use by other programs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			if err := deps.Config.Validate(); err != nil {
				return err
			}

			formatter.Downloading(videoID)
			tracker := formatter.Tracker("Download")
			if err := deps.App.Download.Execute(cmd.Context(), videoID, outputPath, tracker.Update); err != nil {
				return err
			}
			if tracker.Active() {
				tracker.Complete()
			}
			formatter.DownloadDone(outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&videoID, "video-id", "", "YouTube video ID")
	cmd.Flags().StringVar(&outputPath, "output", "", "Output path for the audio file")
	_ = cmd.MarkFlagRequired("video-id")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
