package imsz

import (
	"encoding/binary"
	"math"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// decodePNG reads the IHDR chunk, which must be the first chunk.
func decodePNG(r source) (Size, error) {
	b, err := r.readExact(0, len(pngHeader)+8+8)
	if err != nil {
		return Size{}, err
	}
	if binary.BigEndian.Uint32(b[8:12]) != 13 || string(b[12:16]) != "IHDR" {
		return Size{}, &FormatError{PNG, "first chunk is not IHDR"}
	}
	w := binary.BigEndian.Uint32(b[16:20])
	h := binary.BigEndian.Uint32(b[20:24])
	if w > math.MaxInt32 || h > math.MaxInt32 {
		return Size{}, &FormatError{PNG, "dimension exceeds 2^31-1"}
	}
	return Size{Width: uint64(w), Height: uint64(h)}, nil
}
