// Package secret frames text payloads for LSB embedding and recovers them
// from extracted bit streams.
//
// A framed secret is the payload followed by the Delimiter constant, each
// character serialized as 8 bits most-significant-bit first. The delimiter
// is the only end-of-message marker: there is no length field, so both
// sides of the wire must share the same constant.
package secret

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yyyoichi/bitstream-go"
)

// Delimiter marks the end of the hidden message. It is part of the wire
// contract: an encoder and a decoder configured with different delimiters
// cannot interoperate, and no runtime check can detect the mismatch.
const Delimiter = "#####"

var (
	// ErrUnencodableRune reports a payload character outside the
	// single-byte range U+0000..U+00FF.
	ErrUnencodableRune = errors.New("secret: rune outside single-byte range")
	// ErrDelimiterInText reports a payload that itself contains the
	// delimiter. Extraction stops at the first delimiter run, so such a
	// payload would come back truncated. Pass AllowDelimiter to accept it.
	ErrDelimiterInText = errors.New("secret: text contains the delimiter")
)

// Secret is a framed payload ready for embedding. It provides ordered
// bit-level access for the injector.
type Secret struct {
	reader *bitstream.BitReader[uint64]
}

// NewText frames text and serializes it into a bit sequence.
// Every rune must fit in a single byte; runes above U+00FF fail with
// ErrUnencodableRune before any carrier work happens.
func NewText(text string, opts ...Option) (*Secret, error) {
	for i, r := range text {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrUnencodableRune, r, i)
		}
	}
	f := newFactory(opts...)
	if !f.allowDelimiter && strings.Contains(text, Delimiter) {
		return nil, fmt.Errorf("%w: %q", ErrDelimiterInText, text)
	}
	// Latin-1 runes above U+007F are two bytes in Go's UTF-8 string
	// representation; the wire format wants one byte per rune.
	payload := make([]byte, 0, len(text))
	for _, r := range text {
		payload = append(payload, byte(r))
	}
	return newSecret(payload, f), nil
}

// NewBytes frames raw bytes the same way NewText frames text.
func NewBytes(payload []byte, opts ...Option) (*Secret, error) {
	f := newFactory(opts...)
	if !f.allowDelimiter && bytes.Contains(payload, []byte(Delimiter)) {
		return nil, fmt.Errorf("%w: %q", ErrDelimiterInText, payload)
	}
	return newSecret(payload, f), nil
}

func newSecret(payload []byte, f factory) *Secret {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range payload {
		w.Write8(0, 8, v)
	}
	for _, v := range []byte(Delimiter) {
		w.Write8(0, 8, v)
	}
	data, bits := f.c.encode(w.Data(), w.Bits())
	reader := bitstream.NewBitReader(data, 0, 0)
	reader.SetBits(bits)
	return &Secret{reader: reader}
}

// Bit returns the bit at the specified position, 0 or 1.
func (s *Secret) Bit(at int) byte {
	return byte(s.reader.Read8R(1, at))
}

// Len returns the total number of bits in the framed secret. Without ECC
// this is 8 * (payload length + delimiter length).
func (s *Secret) Len() int {
	return s.reader.Bits()
}
