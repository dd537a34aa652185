package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bubroz/videograbber/internal/browser"
	"github.com/bubroz/videograbber/internal/model"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "profiles",
		Short:         "List browser profiles (display name and directory)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfiles(cmd)
		},
	}
}

func runProfiles(cmd *cobra.Command) error {
	b, err := browser.ParseBrowser(stringOpt(cmd, "browser", "browser", string(model.BrowserBrave)))
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	entries, err := browser.Profiles(b)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No profiles found for %s\n", b)
		return nil
	}
	fmt.Fprintf(out, "Available %s profiles:\n", b)
	for _, e := range entries {
		fmt.Fprintf(out, "- Display name: %q\n", e.DisplayName)
		fmt.Fprintf(out, "  Directory:    %q\n", e.Dir)
	}
	return nil
}
