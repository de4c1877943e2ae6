// Package lsb implements the least-significant-bit carrier operations:
// writing payload bits into sample bytes and reading them back out.
package lsb

// Source yields the ordered payload bits to inject.
type Source interface {
	// Bit returns the bit at the specified position, 0 or 1.
	Bit(at int) byte
	// Len returns the total number of bits.
	Len() int
}

// Sink consumes extracted bits. Feed reports true once the sink needs no
// more bits.
type Sink interface {
	Feed(bit byte) bool
}

// Inject returns a copy of carrier where the least-significant bit of byte
// i holds src.Bit(i) for i < src.Len(). The remaining seven bits of every
// covered byte, and every byte past the payload, are identical to the
// carrier. The carrier itself is never written.
//
// The caller guarantees src.Len() <= len(carrier).
func Inject(carrier []byte, src Source) []byte {
	out := make([]byte, len(carrier))
	copy(out, carrier)
	for i := range src.Len() {
		out[i] = out[i]&0xFE | src.Bit(i)&0x01
	}
	return out
}

// Scan feeds the least-significant bit of each carrier byte to sink in
// order and reports whether the sink finished before the carrier ran out.
// Single pass, no backtracking.
func Scan(carrier []byte, sink Sink) bool {
	for _, b := range carrier {
		if sink.Feed(b & 0x01) {
			return true
		}
	}
	return false
}
