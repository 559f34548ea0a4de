package imsz

import "encoding/binary"

// decodeGIF reads the logical screen size that follows the 6-byte
// signature.
func decodeGIF(r source) (Size, error) {
	b, err := r.readExact(0, 10)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  uint64(binary.LittleEndian.Uint16(b[6:8])),
		Height: uint64(binary.LittleEndian.Uint16(b[8:10])),
	}, nil
}
