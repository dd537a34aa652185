package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bubroz/videograbber/internal/metadata"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "info <sidecar.info.json>",
		Short:         "Show the reduced metadata stored in a sidecar file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := metadata.ReadSidecar(args[0])
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== Video Information ===")
			fmt.Fprintf(out, "Title:       %s\n", meta.Title)
			fmt.Fprintf(out, "Creator:     %s\n", meta.Creator)
			fmt.Fprintf(out, "Upload Date: %s\n", meta.UploadDate)
			fmt.Fprintf(out, "Duration:    %s\n", meta.Duration)
			fmt.Fprintf(out, "Resolution:  %s\n", meta.Resolution)
			fmt.Fprintf(out, "View Count:  %v\n", meta.ViewCount)
			fmt.Fprintf(out, "URL:         %s\n", meta.URL)
			return nil
		},
	}
}
