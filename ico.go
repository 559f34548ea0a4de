package imsz

import "encoding/binary"

// icoMagic is the reserved word followed by the resource type 1 (icon).
const icoMagic = "\x00\x00\x01\x00"

const icoDirEntryLen = 16

// decodeICO reports the size of the first directory entry, which is not
// necessarily the largest image in the file. Entry sizes are single
// bytes where 0 means 256.
func decodeICO(r source) (Size, error) {
	b, err := r.readExact(0, 6+icoDirEntryLen)
	if err != nil {
		return Size{}, err
	}
	if binary.LittleEndian.Uint16(b[4:6]) == 0 {
		return Size{}, &FormatError{ICO, "empty image directory"}
	}
	w, h := uint64(b[6]), uint64(b[7])
	if w == 0 {
		w = 256
	}
	if h == 0 {
		h = 256
	}
	return Size{Width: w, Height: h}, nil
}
