package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nsrdbin/vpack"
	"github.com/nsrdbin/vpack/errs"
)

var (
	verifyFingerprintHex string
	verifyStride         uint64
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Validate a vpack binary file against an expected schema",
	Long: `Runs the same validation a ReadBinary call would, against a
fingerprint and stride supplied on the command line instead of a compiled
schema, and prints the resulting error tag, or OK if every check passes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wantFingerprint, err := strconv.ParseUint(verifyFingerprintHex, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid --fingerprint: %w", err)
		}

		info, err := vpack.InspectHeader(args[0])
		if err != nil {
			fmt.Println(errs.Message(err))
			return err
		}
		if info.Magic != "NSRDBIN1" {
			fmt.Println(errs.Message(errs.ErrInvalidHeader))
			return errs.ErrInvalidHeader
		}
		if info.Fingerprint != wantFingerprint || info.Stride != verifyStride {
			fmt.Println(errs.Message(errs.ErrSchemaMismatch))
			return errs.ErrSchemaMismatch
		}
		if info.PayloadSize != info.Stride*info.RecordCount {
			fmt.Println(errs.Message(errs.ErrInvalidHeader))
			return errs.ErrInvalidHeader
		}
		st, err := os.Stat(args[0])
		if err != nil {
			fmt.Println(errs.Message(errs.ErrReadFailed))
			return errs.Wrapf(errs.ErrReadFailed, "stat %s: %v", args[0], err)
		}
		const headerSize = 40 // must match the vpack binary header's fixed size
		if uint64(st.Size()-headerSize) != info.PayloadSize {
			fmt.Println(errs.Message(errs.ErrTruncatedPayload))
			return errs.ErrTruncatedPayload
		}
		if info.Stride == 0 || info.PayloadSize%info.Stride != 0 {
			fmt.Println(errs.Message(errs.ErrPayloadSizeMismatch))
			return errs.ErrPayloadSizeMismatch
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFingerprintHex, "fingerprint", "0x0", "expected schema fingerprint, as a hex or decimal literal")
	verifyCmd.Flags().Uint64Var(&verifyStride, "stride", 0, "expected record stride, in bytes")
	rootCmd.AddCommand(verifyCmd)
}
