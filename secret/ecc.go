package secret

import (
	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

const (
	// codewordBits is the carrier footprint of one perfect Golay codeword.
	codewordBits = 23
	// codewordDataBits is how many frame bits one codeword carries.
	codewordDataBits = 12
)

var _ coder = (*plain)(nil)

type plain struct{}

func (plain) encode(data []uint64, bits int) ([]uint64, int) {
	return data, bits
}

func (plain) chunkBits() int { return 1 }

func (plain) decodeChunk(chunk uint32) (uint16, int) {
	return uint16(chunk), 1
}

var _ coder = (*golayCode)(nil)

type golayCode struct{}

func (golayCode) encode(data []uint64, bits int) ([]uint64, int) {
	if bits == 0 {
		return nil, 0
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(data, bits)
	return encoded, enc.Bits()
}

func (golayCode) chunkBits() int { return codewordBits }

func (golayCode) decodeChunk(chunk uint32) (uint16, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range codewordBits {
		w.WriteBitAt(i, chunk&(1<<(codewordBits-1-i)) != 0)
	}
	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), codewordBits)
	_ = dec.Decode(&decoded)
	r := bitstream.NewBitReader(decoded, 0, 0)
	r.SetBits(codewordDataBits)
	var out uint16
	for i := range codewordDataBits {
		out <<= 1
		if bit, _ := r.ReadBitAt(i); bit {
			out |= 1
		}
	}
	return out, codewordDataBits
}
