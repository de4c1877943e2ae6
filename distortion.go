package stego

import (
	"math/bits"

	"gonum.org/v1/gonum/stat"
)

// Distortion returns the mean fraction of flipped bits per byte between a
// cover buffer and its stego counterpart, comparing the common prefix.
// LSB injection flips at most one bit per byte, so the result of a
// successful injection never exceeds 1/8.
func Distortion(cover, stego []byte) float64 {
	n := min(len(cover), len(stego))
	if n == 0 {
		return 0
	}
	flips := make([]float64, n)
	for i := range n {
		flips[i] = float64(bits.OnesCount8(cover[i]^stego[i])) / 8
	}
	return stat.Mean(flips, nil)
}
