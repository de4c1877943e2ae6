package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	stego "github.com/yyyoichi/sonic_vault"
	"github.com/yyyoichi/sonic_vault/wav"
)

// injectCmd represents the inject command
var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Hide a secret text file inside a WAV carrier",
	Long: `Inject reads a cover WAV file and a secret text file, overwrites one
least-significant bit per sample byte with the framed secret, and writes
the stego WAV with the cover's header fields unchanged.

Example:
  sonicvault inject -c cover.wav -s secret.txt -o stego_song.wav`,
	RunE: func(cmd *cobra.Command, args []string) error {
		coverPath, _ := cmd.Flags().GetString("cover")
		secretPath, _ := cmd.Flags().GetString("secret")
		outPath, _ := cmd.Flags().GetString("output")
		useGolay, _ := cmd.Flags().GetBool("golay")

		text, err := os.ReadFile(secretPath)
		if err != nil {
			return fmt.Errorf("read secret: %w", err)
		}
		file, err := readWAV(coverPath)
		if err != nil {
			return err
		}
		printFormat(cmd, file)

		var opts []stego.Option
		if useGolay {
			opts = append(opts, stego.WithGolay())
		}
		codec, err := stego.New(opts...)
		if err != nil {
			return err
		}
		stegoData, err := codec.Inject(file.Data, string(text))
		if err != nil {
			return fmt.Errorf("inject: %w", err)
		}
		if err := writeWAV(outPath, &wav.File{Format: file.Format, Data: stegoData}); err != nil {
			return err
		}

		required, _ := codec.RequiredBits(string(text))
		cmd.Printf("[DATA] hidden: %d characters (%d bits)\n", len(text), required)
		cmd.Printf("[CAP ] capacity usage: %.4f%%\n", float64(required)/float64(file.CapacityBits())*100)
		cmd.Printf("[DIST] distortion: %.4f%%\n", stego.Distortion(file.Data, stegoData)*100)
		cmd.Printf("[FILE] stego audio written to %s\n", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(injectCmd)
	injectCmd.Flags().StringP("cover", "c", "", "cover WAV file to hide the message in")
	injectCmd.Flags().StringP("secret", "s", "", "text file holding the message to hide")
	injectCmd.Flags().StringP("output", "o", "stego_song.wav", "output stego WAV file")
	injectCmd.Flags().Bool("golay", false, "protect the payload with the Golay(23,12) code")
	_ = injectCmd.MarkFlagRequired("cover")
	_ = injectCmd.MarkFlagRequired("secret")
}
