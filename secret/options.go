package secret

type (
	// Option selects the frame encoding for secrets and scanners.
	// Encoder and decoder must be configured with the same options.
	Option  func(*factory)
	factory struct {
		c              coder
		allowDelimiter bool
	}
	coder interface {
		encode(data []uint64, bits int) ([]uint64, int)
		// chunkBits is how many extracted bits the scanner buffers
		// before decodeChunk can turn them into frame bits.
		chunkBits() int
		// decodeChunk decodes one buffered chunk. The chunk and the
		// returned frame bits are right-aligned, most significant first.
		decodeChunk(chunk uint32) (out uint16, bits int)
	}
)

func newFactory(opts ...Option) factory {
	var f factory
	for _, opt := range opts {
		opt(&f)
	}
	if f.c == nil {
		f.c = plain{}
	}
	return f
}

// WithoutECC frames the payload as-is, one carrier bit per frame bit.
// This is the default and the wire format shared with decoders that scan
// raw LSBs.
func WithoutECC() Option {
	return func(f *factory) {
		f.c = plain{}
	}
}

// WithGolay applies the perfect Golay(23,12) code to the framed bit
// sequence. The carrier then holds 23-bit codewords instead of raw frame
// bits, and the scanner corrects up to three flipped bits per codeword.
// This changes the wire format; injection and extraction must both use it.
func WithGolay() Option {
	return func(f *factory) {
		f.c = golayCode{}
	}
}

// AllowDelimiter accepts payload text that contains the delimiter.
// Extraction stops at the first delimiter run, so the recovered text is
// truncated there; callers opting in are expected to know that.
func AllowDelimiter() Option {
	return func(f *factory) {
		f.allowDelimiter = true
	}
}
