package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	stego "github.com/yyyoichi/sonic_vault"
)

// maxSearchBytes caps the delimiter scan so a carrier without a hidden
// message cannot drag extraction through an arbitrarily large file.
const maxSearchBytes = 10_000_000

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Recover a hidden text payload from a stego WAV",
	Long: `Extract scans the least-significant bits of a stego WAV's sample data,
reassembles characters, and stops at the frame delimiter. A carrier whose
bits never reproduce the delimiter is reported as holding no recoverable
message.

Example:
  sonicvault extract -i stego_song.wav -o recovered.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, _ := cmd.Flags().GetString("input")
		outPath, _ := cmd.Flags().GetString("output")
		useGolay, _ := cmd.Flags().GetBool("golay")

		file, err := readWAV(inPath)
		if err != nil {
			return err
		}
		printFormat(cmd, file)

		opts := []stego.Option{stego.WithScanLimit(maxSearchBytes)}
		if useGolay {
			opts = append(opts, stego.WithGolay())
		}
		text, err := stego.Extract(file.Data, opts...)
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write message: %w", err)
			}
			cmd.Printf("[FILE] message saved to %s\n", outPath)
		}
		cmd.Printf("[LEN ] message length: %d characters\n", len(text))
		cmd.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("input", "i", "", "stego WAV file containing the hidden message")
	extractCmd.Flags().StringP("output", "o", "", "optional text file to save the extracted message")
	extractCmd.Flags().Bool("golay", false, "decode a payload protected with the Golay(23,12) code")
	_ = extractCmd.MarkFlagRequired("input")
}
