package imsz

import (
	"encoding/binary"
	"fmt"
)

const psdMagic = "8BPS"

// decodePSD reads a Photoshop file header. The sniffer has already
// matched the 8BPS signature, so the version is what is checked here:
// 1 is PSD and 2 is the large document format PSB. Both store the height
// first.
func decodePSD(r source) (Size, error) {
	b, err := r.readExact(0, 22)
	if err != nil {
		return Size{}, err
	}
	if version := binary.BigEndian.Uint16(b[4:6]); version != 1 && version != 2 {
		return Size{}, &FormatError{PSD, fmt.Sprintf("unknown version %d", version)}
	}
	return Size{
		Width:  uint64(binary.BigEndian.Uint32(b[18:22])),
		Height: uint64(binary.BigEndian.Uint32(b[14:18])),
	}, nil
}
