// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imsz

import (
	"encoding/binary"
	"fmt"
)

// BMP file and DIB header lengths. The DIB header length doubles as its
// version tag.
const (
	fileHeaderLen     = 14
	coreHeaderLen     = 12  // BITMAPCOREHEADER, OS21XBITMAPHEADER
	os2ShortHeaderLen = 16  // OS22XBITMAPHEADER without its optional fields
	infoHeaderLen     = 40  // BITMAPINFOHEADER
	v2InfoHeaderLen   = 52  // BITMAPV2INFOHEADER
	v3InfoHeaderLen   = 56  // BITMAPV3INFOHEADER
	os2HeaderLen      = 64  // OS22XBITMAPHEADER
	v4InfoHeaderLen   = 108 // BITMAPV4HEADER
	v5InfoHeaderLen   = 124 // BITMAPV5HEADER
)

// decodeBMP reads the dimensions from the DIB header that follows the
// 14-byte file header.
func decodeBMP(r source) (Size, error) {
	b, err := r.readExact(0, fileHeaderLen+4+8)
	if err != nil {
		return Size{}, err
	}
	infoLen := binary.LittleEndian.Uint32(b[14:18])
	switch infoLen {
	case coreHeaderLen:
		// The oldest header has unsigned 16-bit dimensions.
		return Size{
			Width:  uint64(binary.LittleEndian.Uint16(b[18:20])),
			Height: uint64(binary.LittleEndian.Uint16(b[20:22])),
		}, nil
	case os2ShortHeaderLen, infoHeaderLen, v2InfoHeaderLen, v3InfoHeaderLen,
		os2HeaderLen, v4InfoHeaderLen, v5InfoHeaderLen:
	default:
		return Size{}, &FormatError{BMP, fmt.Sprintf("unknown DIB header length %d", infoLen)}
	}
	width := int64(int32(binary.LittleEndian.Uint32(b[18:22])))
	height := int64(int32(binary.LittleEndian.Uint32(b[22:26])))
	if width < 0 {
		return Size{}, &FormatError{BMP, "negative width"}
	}
	// A negative height marks a top-down bitmap.
	if height < 0 {
		height = -height
	}
	return Size{Width: uint64(width), Height: uint64(height)}, nil
}
