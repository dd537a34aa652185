package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/bubroz/videograbber/internal/config"
	"github.com/bubroz/videograbber/internal/model"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "videograbber [url]",
		Short:         "Download social-media videos with browser cookies and reduced metadata",
		Long:          "videograbber downloads videos from social-media platforms by driving yt-dlp: it exports authentication cookies from a local browser profile, runs the download with robust retry flags, and writes a simplified .info.json metadata sidecar next to the media file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listProfiles, _ := cmd.Flags().GetBool("list-profiles")
			if listProfiles {
				return runProfiles(cmd)
			}
			if len(args) == 0 {
				return &ExitError{Code: ExitFailure, Err: errors.New("URL is required unless using --list-profiles")}
			}
			listFormats, _ := cmd.Flags().GetBool("list-formats")
			if listFormats {
				return runFormats(cmd, args[0])
			}
			return runDownload(cmd, args[0], false)
		},
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().StringP("out-dir", "o", "downloads", "Output directory")
	root.PersistentFlags().String("browser", string(model.BrowserBrave), "Browser to export cookies from: brave, chrome, firefox")
	root.PersistentFlags().String("dl-binary", "", "Path to yt-dlp")
	root.PersistentFlags().BoolP("verbose", "v", false, "Show full subprocess commands/output")

	bindDownloadFlags(root)
	root.Flags().Bool("list-formats", false, "List available formats and exit")
	root.Flags().Bool("list-profiles", false, "List available browser profiles and exit")

	// Subcommands
	root.AddCommand(newGetCmd())
	root.AddCommand(newProfilesCmd())
	root.AddCommand(newFormatsCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	_ = config.Init(root)

	return root
}

func bindDownloadFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", "", "Browser profile to use (display name or directory, e.g. 'Profile 1')")
	cmd.Flags().String("format", model.DefaultFormat, "Video format spec to download")
	cmd.Flags().Bool("metadata-only", false, "Fetch and save metadata without locating a media file")
	cmd.Flags().Bool("no-ui", false, "Disable TUI; use plain textual output")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}
