package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var (
	// リリースビルド時に -ldflags で上書きする
	version = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "namectl",
		Short:         "Inspect and convert compound names",
		Long:          `namectl parses, escapes and describes hierarchical compound names without running the HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newDescribeCmd(),
		newEscapeCmd(),
		newSplitCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "namectl version "+version+"\n")
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
