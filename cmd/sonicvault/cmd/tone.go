package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yyyoichi/sonic_vault/wav"
)

// toneCmd represents the tone command
var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Generate a sine-wave WAV test carrier",
	Long: `Tone writes a mono 16-bit PCM sine wave to use as a cover file when
trying the codec without real audio at hand.

Example:
  sonicvault tone -o cover.wav -d 10 -f 880`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("output")
		duration, _ := cmd.Flags().GetFloat64("duration")
		frequency, _ := cmd.Flags().GetFloat64("frequency")
		rate, _ := cmd.Flags().GetInt("rate")
		amplitude, _ := cmd.Flags().GetInt("amplitude")

		file, err := wav.Tone(frequency, duration, rate, amplitude)
		if err != nil {
			return err
		}
		if err := writeWAV(outPath, file); err != nil {
			return err
		}

		cmd.Printf("[FREQ] %g Hz at %d Hz sample rate\n", frequency, rate)
		cmd.Printf("[DATA] %d samples (%gs)\n", file.Frames(), duration)
		cmd.Printf("[HIDE] stego capacity: %d characters\n", file.CapacityChars())
		cmd.Printf("[FILE] carrier written to %s\n", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toneCmd)
	toneCmd.Flags().StringP("output", "o", "cover.wav", "output WAV file")
	toneCmd.Flags().Float64P("duration", "d", 5.0, "duration in seconds")
	toneCmd.Flags().Float64P("frequency", "f", 440.0, "tone frequency in Hz")
	toneCmd.Flags().IntP("rate", "r", 44100, "sample rate in Hz")
	toneCmd.Flags().IntP("amplitude", "a", 16000, "wave amplitude, at most 32767")
}
