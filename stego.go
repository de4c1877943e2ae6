// Package stego hides text payloads in the sample bytes of uncompressed
// audio by overwriting one least-significant bit per byte, and recovers
// them later by scanning for the frame delimiter.
//
// The codec operates on raw sample bytes only; reading and writing the
// surrounding audio container is the wav package's job. Each call is a
// pure transformation: Inject returns a new buffer and never writes the
// carrier, Extract only reads, and no state is retained between calls, so
// concurrent calls need no synchronization even on shared buffers.
//
// Concealment is not encryption. Anyone who knows the scheme can recover
// the payload, and the LSB pattern is not hardened against statistical
// steganalysis.
package stego

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/sonic_vault/internal/lsb"
	"github.com/yyyoichi/sonic_vault/secret"
)

var (
	// ErrCarrierTooSmall reports a carrier with fewer bytes than the
	// framed secret has bits.
	ErrCarrierTooSmall = errors.New("carrier is too small for the framed secret")
	// ErrDelimiterNotFound reports a scan that exhausted the carrier
	// without seeing the delimiter. The codec cannot tell whether no
	// message was ever injected, the wrong carrier was supplied, or the
	// carrier was truncated after injection, and does not guess.
	ErrDelimiterNotFound = errors.New("delimiter not found in carrier")
)

// CapacityError reports an injection that would not fit the carrier.
// It unwraps to ErrCarrierTooSmall.
type CapacityError struct {
	RequiredBits  int // bits needed for the framed secret
	AvailableBits int // one bit per carrier byte
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("carrier is too small: need %d bits, have %d", e.RequiredBits, e.AvailableBits)
}

func (e *CapacityError) Unwrap() error {
	return ErrCarrierTooSmall
}

// Inject hides text in a copy of carrier with the specified options.
// This is a convenience function that creates a Codec and calls its Inject method.
func Inject(carrier []byte, text string, opts ...Option) ([]byte, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Inject(carrier, text)
}

// Extract recovers a hidden text from carrier with the specified options.
// This is a convenience function that creates a Codec and calls its Extract method.
func Extract(carrier []byte, opts ...Option) (string, error) {
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.Extract(carrier)
}

// Codec injects and extracts framed secrets. The zero-option codec speaks
// the plain delimiter wire format and scans whole carriers.
type Codec struct {
	frame     []secret.Option
	scanLimit int
}

// New initializes a codec with the specified options.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Inject frames text with the delimiter, validates capacity, and returns a
// copy of carrier whose leading least-significant bits hold the frame.
// Injection is all-or-nothing: on any error no output buffer is produced
// and the carrier bytes are untouched.
//
// Errors: secret.ErrUnencodableRune for runes above U+00FF,
// secret.ErrDelimiterInText when text contains the delimiter (unless
// AllowDelimiter is set), and *CapacityError when the frame does not fit.
func (c *Codec) Inject(carrier []byte, text string) ([]byte, error) {
	sec, err := secret.NewText(text, c.frame...)
	if err != nil {
		return nil, err
	}
	if sec.Len() > len(carrier) {
		return nil, &CapacityError{RequiredBits: sec.Len(), AvailableBits: len(carrier)}
	}
	return lsb.Inject(carrier, sec), nil
}

// Extract scans carrier least-significant bits for a framed secret and
// returns the text before the delimiter run. The scan is a single O(n)
// pass; if the carrier (or the configured scan limit) is exhausted first,
// it fails with ErrDelimiterNotFound.
func (c *Codec) Extract(carrier []byte) (string, error) {
	scan := carrier
	if c.scanLimit > 0 && c.scanLimit < len(scan) {
		scan = scan[:c.scanLimit]
	}
	sc := secret.NewScanner(c.frame...)
	if !lsb.Scan(scan, sc) {
		return "", fmt.Errorf("%w: scanned %d bytes", ErrDelimiterNotFound, len(scan))
	}
	return sc.Text(), nil
}

// RequiredBits returns how many carrier bytes text needs once framed with
// the codec's encoding, one bit per byte.
func (c *Codec) RequiredBits(text string) (int, error) {
	sec, err := secret.NewText(text, c.frame...)
	if err != nil {
		return 0, err
	}
	return sec.Len(), nil
}
