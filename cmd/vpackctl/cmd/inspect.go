package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsrdbin/vpack"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print a vpack binary file's header",
	Long: `Reads the 40-byte header without validating it against any
particular schema and prints magic, fingerprint, stride and record count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := vpack.InspectHeader(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("magic:        %q\n", info.Magic)
		fmt.Printf("fingerprint:  0x%016X\n", info.Fingerprint)
		fmt.Printf("stride:       %d\n", info.Stride)
		fmt.Printf("record_count: %d\n", info.RecordCount)
		fmt.Printf("payload_size: %d\n", info.PayloadSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
