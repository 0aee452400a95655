package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matt11seven/tr/internal/domain/transcript/usecases"
	"github.com/matt11seven/tr/internal/output"
	"github.com/matt11seven/tr/internal/youtube"
)

func NewTranscribeCmd(deps *Dependencies) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "transcribe [url-or-id]",
		Short: "Download a video's audio and transcribe it",
		Long:  "Download the audio of a YouTube video and transcribe it with speaker labels.\nWith no argument, prompts for a URL or video ID.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())
			reader := bufio.NewReader(cmd.InOrStdin())

			if err := deps.Config.Validate(); err != nil {
				return err
			}

			interactive := len(args) == 0
			var input string
			if interactive {
				printBanner(cmd.OutOrStdout())
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading input: %w", err)
				}
				input = strings.TrimSpace(line)
			} else {
				input = args[0]
			}
			if input == "" {
				return fmt.Errorf("no video URL or ID given")
			}

			videoID := youtube.ParseVideoID(input)
			return runTranscription(cmd, deps, formatter, reader, videoID, force, interactive)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reprocess even if a transcript already exists")

	return cmd
}

func runTranscription(cmd *cobra.Command, deps *Dependencies, formatter *output.Formatter, reader *bufio.Reader, videoID string, force, interactive bool) error {
	downloadTracker := formatter.Tracker("Download")
	pollTracker := formatter.Tracker("Transcription")

	result, err := deps.App.Transcribe.Execute(cmd.Context(), videoID, usecases.Options{
		Force:              force,
		OnDownloadProgress: downloadTracker.Update,
		OnProgress:         pollTracker.Update,
		OnStage: func(stage string) {
			switch stage {
			case "downloading":
				formatter.Downloading(videoID)
			case "transcribing":
				if downloadTracker.Active() {
					downloadTracker.Complete()
				}
				formatter.Transcribing()
			}
		},
	})
	if err != nil {
		return err
	}

	if result.Reused {
		formatter.TranscriptReused(result.DetailedPath)
		if interactive && promptYesNo(cmd.OutOrStdout(), reader, "Reprocess?") {
			return runTranscription(cmd, deps, formatter, reader, videoID, true, false)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Content)
		return nil
	}

	pollTracker.Complete()
	formatter.TranscriptSaved(result.DetailedPath, result.SimplePath)
	return nil
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "\n=== YOUTUBE VIDEO TRANSCRIPTION ===")
	fmt.Fprintln(w, "\nEnter a YouTube URL or video ID")
	fmt.Fprintln(w, "Valid examples:")
	fmt.Fprintln(w, "- https://www.youtube.com/watch?v=VIDEO_ID")
	fmt.Fprintln(w, "- https://youtu.be/VIDEO_ID")
	fmt.Fprintln(w, "- VIDEO_ID")
	fmt.Fprint(w, "\nURL or ID: ")
}

func promptYesNo(w io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(w, "\n%s (y/N): ", question)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
