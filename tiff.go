// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imsz

import (
	"encoding/binary"
	"fmt"
)

type tiffdecoder struct {
	r         source
	byteOrder binary.ByteOrder
}

// ifdUint decodes the first value of the IFD entry in p, which must be of
// the Byte, Short or Long type.
func (d *tiffdecoder) ifdUint(p []byte) (uint64, error) {
	datatype := d.byteOrder.Uint16(p[2:4])
	switch datatype {
	case dtByte, dtShort, dtLong:
	default:
		return 0, &FormatError{TIFF, fmt.Sprintf("IFD entry datatype %d", datatype)}
	}
	count := d.byteOrder.Uint32(p[4:8])
	if count == 0 {
		return 0, &FormatError{TIFF, "empty IFD entry"}
	}

	raw := p[8:12]
	if datalen := uint64(lengths[datatype]) * uint64(count); datalen > 4 {
		// The IFD contains a pointer to the real value.
		var err error
		raw, err = d.r.readExact(int64(d.byteOrder.Uint32(p[8:12])), int(lengths[datatype]))
		if err != nil {
			return 0, err
		}
	}

	switch datatype {
	case dtByte:
		return uint64(raw[0]), nil
	case dtShort:
		return uint64(d.byteOrder.Uint16(raw[0:2])), nil
	default:
		return uint64(d.byteOrder.Uint32(raw[0:4])), nil
	}
}

// readIFD scans the IFD at off for the image width and length. It
// returns the offset of the next IFD, 0 if there is none.
func (d *tiffdecoder) readIFD(off int64) (sz Size, found bool, next int64, err error) {
	p, err := d.r.readExact(off, 2)
	if err != nil {
		return Size{}, false, 0, err
	}
	numItems := int(d.byteOrder.Uint16(p[0:2]))
	if numItems == 0 || numItems > maxIFDEntries {
		return Size{}, false, 0, &FormatError{TIFF, fmt.Sprintf("bad IFD entry count %d", numItems)}
	}

	// All IFD entries and the next IFD offset are read in one chunk.
	p, err = d.r.readExact(off+2, ifdLen*numItems+4)
	if err != nil {
		return Size{}, false, 0, err
	}

	var haveWidth, haveLength bool
	prevTag := -1
	for i := 0; i < ifdLen*numItems; i += ifdLen {
		entry := p[i : i+ifdLen]
		tag := int(d.byteOrder.Uint16(entry[0:2]))
		if tag <= prevTag {
			return Size{}, false, 0, &FormatError{TIFF, "tags are not sorted in ascending order"}
		}
		prevTag = tag
		switch tag {
		case tImageWidth:
			if sz.Width, err = d.ifdUint(entry); err != nil {
				return Size{}, false, 0, err
			}
			haveWidth = true
		case tImageLength:
			if sz.Height, err = d.ifdUint(entry); err != nil {
				return Size{}, false, 0, err
			}
			haveLength = true
		}
	}
	next = int64(d.byteOrder.Uint32(p[ifdLen*numItems:]))
	return sz, haveWidth && haveLength, next, nil
}

// decodeTIFF returns the dimensions recorded in the first IFD that has
// both an ImageWidth and an ImageLength entry.
func decodeTIFF(r source) (Size, error) {
	d := &tiffdecoder{r: r}

	p, err := r.readExact(0, 8)
	if err != nil {
		return Size{}, err
	}
	switch string(p[0:4]) {
	case leHeader:
		d.byteOrder = binary.LittleEndian
	case beHeader:
		d.byteOrder = binary.BigEndian
	default:
		return Size{}, &FormatError{TIFF, "malformed header"}
	}

	ifdOffset := int64(d.byteOrder.Uint32(p[4:8]))
	seen := make(map[int64]bool)
	for i := 0; i < maxIFDs; i++ {
		if ifdOffset < 8 {
			return Size{}, &FormatError{TIFF, fmt.Sprintf("bad IFD offset %d", ifdOffset)}
		}
		if seen[ifdOffset] {
			return Size{}, &FormatError{TIFF, "IFD chain loops"}
		}
		seen[ifdOffset] = true

		sz, found, next, err := d.readIFD(ifdOffset)
		if err != nil {
			return Size{}, err
		}
		if found {
			return sz, nil
		}
		if next == 0 {
			break
		}
		ifdOffset = next
	}
	return Size{}, &FormatError{TIFF, "no IFD with ImageWidth and ImageLength"}
}
