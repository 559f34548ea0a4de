package imsz

import (
	"encoding/binary"
	"fmt"
)

const qoiMagic = "qoif"

// decodeQOI reads the 14-byte QOI header: magic, big-endian width and
// height, channel count and colorspace.
func decodeQOI(r source) (Size, error) {
	b, err := r.readExact(0, 14)
	if err != nil {
		return Size{}, err
	}
	if channels := b[12]; channels != 3 && channels != 4 {
		return Size{}, &FormatError{QOI, fmt.Sprintf("invalid number of channels %d", channels)}
	}
	if colorspace := b[13]; colorspace > 1 {
		return Size{}, &FormatError{QOI, fmt.Sprintf("invalid colorspace %d", colorspace)}
	}
	return Size{
		Width:  uint64(binary.BigEndian.Uint32(b[4:8])),
		Height: uint64(binary.BigEndian.Uint32(b[8:12])),
	}, nil
}
