package main

import (
	"fmt"

	"github.com/akyairhashvil/intervals/internal/tui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.VersionLabel())
			return err
		},
	}
}
