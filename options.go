package stego

import "github.com/yyyoichi/sonic_vault/secret"

type Option func(*Codec) error

// WithGolay protects the framed secret with the perfect Golay(23,12)
// code, correcting up to three flipped carrier bits per 23-bit codeword.
// This changes the carrier format; injection and extraction must both use
// the option.
func WithGolay() Option {
	return func(c *Codec) error {
		c.frame = append(c.frame, secret.WithGolay())
		return nil
	}
}

// AllowDelimiter accepts secrets that contain the delimiter themselves.
// Extraction stops at the first delimiter run, so such a secret comes back
// truncated; without this option Inject rejects it up front.
func AllowDelimiter() Option {
	return func(c *Codec) error {
		c.frame = append(c.frame, secret.AllowDelimiter())
		return nil
	}
}

// WithScanLimit caps extraction at the first n carrier bytes, so a carrier
// with no delimiter cannot drag the scan through an arbitrarily large
// buffer. Zero or negative scans the whole carrier.
func WithScanLimit(n int) Option {
	return func(c *Codec) error {
		c.scanLimit = n
		return nil
	}
}
