package main

import (
	"fmt"
	"strings"

	"github.com/mwhite7112/woodpantry-cookbook/internal/service"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>...",
		Short: "Print the normalized display name for free text",
		Args:  cobra.MinimumNArgs(1),
		// Input like "---" or "-matcha" is text to clean up, not flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := service.Normalize(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
