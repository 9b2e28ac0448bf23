package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dumpStride int
	dumpCount  int
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Hex-dump a vpack binary file's payload, one record per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpStride <= 0 {
			return fmt.Errorf("--stride must be positive")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		const headerSize = 40 // must match the vpack binary header's fixed size
		if len(data) < headerSize {
			return fmt.Errorf("file shorter than the binary header")
		}
		payload := data[headerSize:]

		n := dumpCount
		if n <= 0 {
			n = len(payload) / dumpStride
		}
		for i := 0; i < n; i++ {
			start := i * dumpStride
			end := start + dumpStride
			if end > len(payload) {
				break
			}
			fmt.Printf("%6d  %s\n", i, hex.EncodeToString(payload[start:end]))
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().IntVar(&dumpStride, "stride", 0, "record stride, in bytes (required)")
	dumpCmd.Flags().IntVar(&dumpCount, "count", 0, "number of records to dump (0 means all)")
	rootCmd.AddCommand(dumpCmd)
}
