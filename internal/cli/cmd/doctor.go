package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bubroz/videograbber/internal/util/deps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (yt-dlp, ffmpeg)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dl, err := deps.FindDownloader(stringOpt(cmd, "dl-binary", "dl_binary", ""))
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Downloader: %s\n", dl)
			if ff, ferr := deps.FindFFmpeg(); ferr == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "FFmpeg:     %s\n", ff)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", ferr)
			}
			return nil
		},
	}
}
