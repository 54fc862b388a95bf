package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdpane"
)

func versionCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "version",
		Short: "Print the mdpane version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mdpane %s\n", mdpane.Build())
			return err
		},
	}
	return &cmd
}
