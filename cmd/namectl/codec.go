package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/na2na-p/compoundname/internal/domain"
)

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [components...]",
		Short: "Join components into a data string",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), domain.JoinDataString(args)+"\n")
			return err
		},
	}
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <data-string>",
		Short: "Split a data string into its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), domain.SplitDataString(args[0]))
		},
	}
}
