package cmd

import (
	"os"

	"github.com/rskv-p/bintree/cmd/cmd_tree"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bintree",
	Short:         "Random binary tree traversal visualizer",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cmd_tree.Cmd)
}
