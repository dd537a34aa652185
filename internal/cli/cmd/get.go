package cmd

import (
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "get <url>",
		Short:         "Download one video (explicit form of the bare invocation)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, args[0], false)
		},
	}
	bindDownloadFlags(cmd)
	return cmd
}
