package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/snaptrail/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the snaptrail version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "snaptrail %s\n", app.BuildVersion())
		},
	}
}
