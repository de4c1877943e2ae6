package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/yyyoichi/sonic_vault/wav"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sonicvault",
	Short: "SonicVault - hide text inside WAV audio",
	Long: `SonicVault conceals text payloads in the least-significant bits of
uncompressed WAV sample data and recovers them later. The audio header is
never touched, and the stego file is the same size as the cover file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readWAV(path string) (*wav.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	file, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := file.Format.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

func writeWAV(path string, file *wav.File) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	return file.Encode(f)
}

func printFormat(cmd *cobra.Command, f *wav.File) {
	cmd.Printf("[INFO] channels: %d\n", f.Format.NumChannels)
	cmd.Printf("[INFO] sample width: %d bytes\n", f.Format.BitsPerSample/8)
	cmd.Printf("[INFO] frame rate: %d Hz\n", f.Format.SampleRate)
	cmd.Printf("[INFO] frames: %d\n", f.Frames())
}
