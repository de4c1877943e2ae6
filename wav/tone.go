package wav

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Tone synthesizes a mono 16-bit PCM sine wave for use as a test carrier.
// frequency is in Hz, duration in seconds. amplitude is clamped to the
// int16 range.
func Tone(frequency, duration float64, sampleRate, amplitude int) (*File, error) {
	if frequency <= 0 || duration <= 0 || sampleRate <= 0 || amplitude < 0 {
		return nil, fmt.Errorf("wav: invalid tone parameters: %gHz for %gs at %dHz, amplitude %d",
			frequency, duration, sampleRate, amplitude)
	}
	if amplitude > math.MaxInt16 {
		amplitude = math.MaxInt16
	}

	samples := int(float64(sampleRate) * duration)
	data := make([]byte, 2*samples)
	for i := range samples {
		v := int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)))
		binary.LittleEndian.PutUint16(data[2*i:], uint16(v))
	}

	return &File{
		Format: Format{
			AudioFormat:   AudioFormatPCM,
			NumChannels:   1,
			SampleRate:    uint32(sampleRate),
			ByteRate:      uint32(sampleRate * 2),
			BlockAlign:    2,
			BitsPerSample: 16,
		},
		Data: data,
	}, nil
}
