package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matt11seven/tr/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			entries, err := os.ReadDir(deps.Config.TranscriptsDir)
			if err != nil {
				if os.IsNotExist(err) {
					formatter.Info("No transcripts found")
					return nil
				}
				return err
			}

			// Detailed transcripts only; the _simples variant is shown
			// as a marker next to its detailed file.
			var titles []string
			for _, e := range entries {
				name := e.Name()
				if e.IsDir() || !strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, "_simples.txt") {
					continue
				}
				titles = append(titles, strings.TrimSuffix(name, ".txt"))
			}

			if len(titles) == 0 {
				formatter.Info("No transcripts found")
				return nil
			}

			sort.Strings(titles)

			formatter.TranscriptListHeader()
			for _, title := range titles {
				simplePath := filepath.Join(deps.Config.TranscriptsDir, title+"_simples.txt")
				_, simpleErr := os.Stat(simplePath)
				formatter.TranscriptListItem(title, simpleErr == nil)
			}

			return nil
		},
	}

	return cmd
}
