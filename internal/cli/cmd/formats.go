package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bubroz/videograbber/internal/downloader"
	"github.com/bubroz/videograbber/internal/util"
	"github.com/bubroz/videograbber/internal/util/deps"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "formats <url>",
		Short:         "List all available formats for a video URL",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormats(cmd, args[0])
		},
	}
}

func runFormats(cmd *cobra.Command, rawURL string) error {
	url, err := util.ValidateURL(rawURL)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	dlPath, err := deps.FindDownloader(stringOpt(cmd, "dl-binary", "dl_binary", ""))
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	listing, err := downloader.ListFormats(cmd.Context(), dlPath, url, nil)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Available formats:")
	fmt.Fprint(cmd.OutOrStdout(), listing)
	return nil
}
