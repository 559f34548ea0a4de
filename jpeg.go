package imsz

import (
	"encoding/binary"
	"fmt"
)

// JPEG marker codes.
const (
	sof0Marker  = 0xc0 // Start Of Frame (Baseline Sequential).
	sof15Marker = 0xcf // Start Of Frame (Differential Lossless, Arithmetic).
	dhtMarker   = 0xc4 // Define Huffman Table.
	jpgMarker   = 0xc8 // Reserved for JPEG extensions.
	dacMarker   = 0xcc // Define Arithmetic Conditioning.
	rst0Marker  = 0xd0 // ReSTart (0).
	soiMarker   = 0xd8 // Start Of Image.
	eoiMarker   = 0xd9 // End Of Image.
	sosMarker   = 0xda // Start Of Scan.
	temMarker   = 0x01 // Temporary private use.
)

// maxJPEGSegments bounds the marker walk.
const maxJPEGSegments = 1 << 16

func isSOF(marker byte) bool {
	if marker < sof0Marker || marker > sof15Marker {
		return false
	}
	return marker != dhtMarker && marker != jpgMarker && marker != dacMarker
}

// decodeJPEG walks the marker segments following SOI up to the first
// frame header. Frame headers store the height before the width. A file
// that ends between segments without a frame header is a FormatError;
// one that ends inside a segment is an *IOError.
func decodeJPEG(r source) (Size, error) {
	off := int64(2)
	for i := 0; i < maxJPEGSegments; i++ {
		b, err := r.readExact(off, 2)
		if err != nil {
			if atEOF(err) {
				// Tell a file that ends between segments from one that
				// ends inside the segment just skipped.
				if _, err := r.readExact(off-1, 1); err != nil {
					return Size{}, err
				}
				return Size{}, &FormatError{JPEG, "no frame header before end of file"}
			}
			return Size{}, err
		}
		if b[0] != 0xff {
			return Size{}, &FormatError{JPEG, fmt.Sprintf("missing marker at offset %d", off)}
		}
		marker := b[1]
		switch {
		case marker == 0xff:
			// Fill byte.
			off++
			continue
		case marker == eoiMarker:
			return Size{}, &FormatError{JPEG, "end of image before frame header"}
		case marker == sosMarker:
			return Size{}, &FormatError{JPEG, "scan before frame header"}
		case marker == temMarker, rst0Marker <= marker && marker <= soiMarker:
			// No length field.
			off += 2
			continue
		}

		b, err = r.readExact(off+2, 2)
		if err != nil {
			return Size{}, err
		}
		n := int64(binary.BigEndian.Uint16(b))
		if n < 2 {
			return Size{}, &FormatError{JPEG, fmt.Sprintf("short segment length %d", n)}
		}
		if isSOF(marker) {
			if n < 7 {
				return Size{}, &FormatError{JPEG, "short frame header"}
			}
			// Sample precision, then number of lines and samples per line.
			b, err = r.readExact(off+4, 5)
			if err != nil {
				return Size{}, err
			}
			return Size{
				Width:  uint64(binary.BigEndian.Uint16(b[3:5])),
				Height: uint64(binary.BigEndian.Uint16(b[1:3])),
			}, nil
		}
		off += 2 + n
	}
	return Size{}, &FormatError{JPEG, "too many segments before frame header"}
}
