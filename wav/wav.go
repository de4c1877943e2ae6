// Package wav reads and writes uncompressed RIFF/WAVE files at the level
// the stego codec needs: the fmt chunk fields and the raw sample bytes.
// Header metadata travels through unchanged; only the sample bytes are
// ever substituted.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

// Audio formats from the fmt chunk.
const (
	AudioFormatPCM       = 1
	AudioFormatIEEEFloat = 3
	AudioFormatALaw      = 6
	AudioFormatMULaw     = 7
)

var (
	ErrNotRIFF  = errors.New("wav: not a RIFF/WAVE stream")
	ErrNoFormat = errors.New("wav: missing fmt chunk")
	ErrNoData   = errors.New("wav: missing data chunk")
)

// Format holds the fmt chunk fields. The codec never derives or changes
// them; a stego file is written with the cover file's Format verbatim.
type Format struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// Validate reports every problem that makes the format unusable as an LSB
// carrier.
func (f *Format) Validate() error {
	var errs error
	if f.AudioFormat != AudioFormatPCM {
		errs = multierror.Append(errs, fmt.Errorf("audio format %d is not PCM", f.AudioFormat))
	}
	if f.NumChannels == 0 {
		errs = multierror.Append(errs, errors.New("zero channels"))
	}
	if f.SampleRate == 0 {
		errs = multierror.Append(errs, errors.New("zero sample rate"))
	}
	if f.BitsPerSample != 8 && f.BitsPerSample != 16 {
		errs = multierror.Append(errs, fmt.Errorf("unsupported bits per sample %d", f.BitsPerSample))
	}
	return errs
}

// File is a decoded WAVE file: the fmt fields and the raw sample bytes of
// the data chunk.
type File struct {
	Format Format
	Data   []byte
}

// Frames returns the number of sample frames in the data chunk.
func (f *File) Frames() int {
	if f.Format.BlockAlign == 0 {
		return 0
	}
	return len(f.Data) / int(f.Format.BlockAlign)
}

// CapacityBits returns how many payload bits the sample data can carry:
// one bit per sample byte.
func (f *File) CapacityBits() int {
	return len(f.Data)
}

// CapacityChars returns how many 8-bit characters fit, delimiter included.
func (f *File) CapacityChars() int {
	return len(f.Data) / 8
}

// Decode parses a RIFF/WAVE stream. The fmt fields and the data chunk's
// raw bytes are retained; other chunks are skipped with RIFF word
// alignment honored.
func Decode(r io.Reader) (*File, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRIFF, err)
	}
	if !bytes.Equal(riff[0:4], []byte("RIFF")) || !bytes.Equal(riff[8:12], []byte("WAVE")) {
		return nil, ErrNotRIFF
	}

	var (
		f         File
		hasFormat bool
		hasData   bool
	)
	for {
		var header [8]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, err
		}
		size := binary.LittleEndian.Uint32(header[4:8])
		switch string(header[0:4]) {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: fmt chunk of %d bytes", ErrNoFormat, size)
			}
			chunk := make([]byte, size)
			if _, err := io.ReadFull(r, chunk); err != nil {
				return nil, fmt.Errorf("wav: short fmt chunk: %w", err)
			}
			f.Format.AudioFormat = binary.LittleEndian.Uint16(chunk[0:2])
			f.Format.NumChannels = binary.LittleEndian.Uint16(chunk[2:4])
			f.Format.SampleRate = binary.LittleEndian.Uint32(chunk[4:8])
			f.Format.ByteRate = binary.LittleEndian.Uint32(chunk[8:12])
			f.Format.BlockAlign = binary.LittleEndian.Uint16(chunk[12:14])
			f.Format.BitsPerSample = binary.LittleEndian.Uint16(chunk[14:16])
			hasFormat = true
		case "data":
			f.Data = make([]byte, size)
			if _, err := io.ReadFull(r, f.Data); err != nil {
				return nil, fmt.Errorf("wav: short data chunk: %w", err)
			}
			hasData = true
		default:
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return nil, err
			}
		}
		if size%2 == 1 {
			// chunks are word aligned
			if _, err := io.CopyN(io.Discard, r, 1); err != nil && err != io.EOF {
				return nil, err
			}
		}
	}
	if !hasFormat {
		return nil, ErrNoFormat
	}
	if !hasData {
		return nil, ErrNoData
	}
	return &f, nil
}

// Encode writes the file as a canonical RIFF/WAVE stream: the retained fmt
// fields unchanged, then the sample bytes.
func (f *File) Encode(w io.Writer) error {
	dataSize := uint32(len(f.Data))
	riffSize := uint32(4+8+16+8) + dataSize
	if dataSize%2 == 1 {
		riffSize++
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, f.Format)
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(f.Data)
	if dataSize%2 == 1 {
		buf.WriteByte(0)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
