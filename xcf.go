package imsz

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const xcfMagic = "gimp xcf "

// decodeXCF reads a GIMP XCF header. The magic is followed by a
// NUL-terminated version tag, "file" or "v" and a version number, and
// then by the big-endian canvas width and height.
func decodeXCF(r source) (Size, error) {
	b, err := r.readExact(0, len(xcfMagic)+5)
	if err != nil {
		return Size{}, err
	}
	if string(b[:len(xcfMagic)]) != xcfMagic {
		return Size{}, &FormatError{XCF, "missing \"gimp xcf \" signature"}
	}
	tag := b[len(xcfMagic):]
	nul := bytes.IndexByte(tag, 0)
	if nul < 0 {
		return Size{}, &FormatError{XCF, "unterminated version tag"}
	}
	if !validXCFVersion(tag[:nul]) {
		return Size{}, &FormatError{XCF, fmt.Sprintf("unknown version tag %q", tag[:nul])}
	}
	b, err = r.readExact(int64(len(xcfMagic)+nul+1), 8)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  uint64(binary.BigEndian.Uint32(b[0:4])),
		Height: uint64(binary.BigEndian.Uint32(b[4:8])),
	}, nil
}

func validXCFVersion(v []byte) bool {
	if string(v) == "file" {
		return true
	}
	if len(v) < 2 || v[0] != 'v' {
		return false
	}
	for _, c := range v[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
