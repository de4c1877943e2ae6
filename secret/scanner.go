package secret

import "strings"

// Scanner reassembles characters from extracted carrier bits and watches
// for the delimiter run. It is the decode-side state machine: it scans
// until the trailing characters match Delimiter, after which it is done
// and further bits are ignored. Exhausting the carrier without a match is
// the caller's condition to detect.
type Scanner struct {
	c coder

	chunk  uint32
	nchunk int

	char  byte
	nchar int

	text  []byte
	found bool
}

// NewScanner returns a scanner for the frame encoding selected by opts.
func NewScanner(opts ...Option) *Scanner {
	f := newFactory(opts...)
	return &Scanner{c: f.c}
}

// Feed consumes one extracted bit (0 or 1) and reports whether the
// delimiter run has been found.
func (s *Scanner) Feed(bit byte) bool {
	if s.found {
		return true
	}
	s.chunk = s.chunk<<1 | uint32(bit&1)
	s.nchunk++
	if s.nchunk < s.c.chunkBits() {
		return false
	}
	out, n := s.c.decodeChunk(s.chunk)
	s.chunk, s.nchunk = 0, 0
	for i := n - 1; i >= 0; i-- {
		s.pushBit(byte(out>>i) & 1)
		if s.found {
			return true
		}
	}
	return false
}

func (s *Scanner) pushBit(bit byte) {
	s.char = s.char<<1 | bit
	s.nchar++
	if s.nchar < 8 {
		return
	}
	s.text = append(s.text, s.char)
	s.char, s.nchar = 0, 0
	if n := len(s.text) - len(Delimiter); n >= 0 && string(s.text[n:]) == Delimiter {
		s.text = s.text[:n]
		s.found = true
	}
}

// Found reports whether the delimiter run has been seen.
func (s *Scanner) Found() bool {
	return s.found
}

// Text returns the characters reconstructed before the delimiter run,
// one rune per recovered byte. Bytes above 0x7F come back as the Latin-1
// runes NewText mapped them from, so the result is always valid UTF-8.
// Before the delimiter is found it is the partial text seen so far.
func (s *Scanner) Text() string {
	var b strings.Builder
	b.Grow(len(s.text))
	for _, c := range s.text {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Bytes returns the recovered payload as raw single-byte characters,
// without the UTF-8 re-encoding Text applies. The returned slice is a
// copy.
func (s *Scanner) Bytes() []byte {
	out := make([]byte, len(s.text))
	copy(out, s.text)
	return out
}
