package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vpackctl",
	Short: "vpackctl inspects and verifies vpack binary files",
	Long: `vpackctl is a debugging aid over the vpack binary file format.

It has no compile-time knowledge of any particular schema; fingerprint and
stride, where a command needs them, are passed on the command line.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
