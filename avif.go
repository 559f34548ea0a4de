package imsz

import (
	"encoding/binary"
	"fmt"
	"math"
)

// maxBoxesPerLevel bounds the number of sibling boxes walked while
// looking for one box type.
const maxBoxesPerLevel = 4096

// isAVIF reports whether the ftyp box at the start of hdr names an AVIF
// brand, either as its major brand or as one of the compatible brands
// present in hdr.
func isAVIF(hdr []byte) bool {
	avifBrand := func(b []byte) bool {
		return string(b) == "avif" || string(b) == "avis"
	}
	if avifBrand(hdr[8:12]) {
		return true
	}
	end := len(hdr)
	if size := binary.BigEndian.Uint32(hdr[0:4]); size >= 16 && uint64(size) < uint64(end) {
		end = int(size)
	}
	// Compatible brands follow the 4-byte minor version.
	for i := 16; i+4 <= end; i += 4 {
		if avifBrand(hdr[i : i+4]) {
			return true
		}
	}
	return false
}

// A box is an ISO base media file format box. body is the offset of
// its payload and end the offset just past it.
type box struct {
	typ  string
	body int64
	end  int64
}

// boxReadError turns a read that ran off the end of the file into a
// FormatError: the box sizes already promised those bytes.
func boxReadError(err error) error {
	if truncated(err) {
		return &FormatError{AVIF, "box extends past end of file"}
	}
	return err
}

// readBox reads the box header at off. parentEnd is the end of the
// enclosing box, or math.MaxInt64 at the top level.
func readBox(r source, off, parentEnd int64) (box, error) {
	b, err := r.readExact(off, 8)
	if err != nil {
		return box{}, err
	}
	size := uint64(binary.BigEndian.Uint32(b[0:4]))
	bx := box{typ: string(b[4:8]), body: off + 8, end: parentEnd}
	switch size {
	case 0:
		// The box extends to the end of its parent.
		return bx, nil
	case 1:
		b, err = r.readExact(off+8, 8)
		if err != nil {
			return box{}, boxReadError(err)
		}
		size = binary.BigEndian.Uint64(b)
		bx.body += 8
	}
	if size < uint64(bx.body-off) {
		return box{}, &FormatError{AVIF, fmt.Sprintf("box %q smaller than its header", bx.typ)}
	}
	if size > uint64(parentEnd-off) {
		return box{}, &FormatError{AVIF, fmt.Sprintf("box %q exceeds its parent", bx.typ)}
	}
	bx.end = off + int64(size)
	return bx, nil
}

// findBox returns the first box of type typ among the boxes stored
// between start and end.
func findBox(r source, start, end int64, typ string) (box, error) {
	off := start
	for i := 0; i < maxBoxesPerLevel && off < end; i++ {
		bx, err := readBox(r, off, end)
		if err != nil {
			if atEOF(err) && end == math.MaxInt64 {
				break
			}
			return box{}, boxReadError(err)
		}
		if bx.typ == typ {
			return bx, nil
		}
		off = bx.end
	}
	return box{}, &FormatError{AVIF, fmt.Sprintf("no %q box", typ)}
}

// decodeAVIF follows meta, iprp and ipco down to the first ispe
// property, which holds the image's spatial extents.
func decodeAVIF(r source) (Size, error) {
	meta, err := findBox(r, 0, math.MaxInt64, "meta")
	if err != nil {
		return Size{}, err
	}
	// meta is a full box; skip its version and flags.
	iprp, err := findBox(r, meta.body+4, meta.end, "iprp")
	if err != nil {
		return Size{}, err
	}
	ipco, err := findBox(r, iprp.body, iprp.end, "ipco")
	if err != nil {
		return Size{}, err
	}
	ispe, err := findBox(r, ipco.body, ipco.end, "ispe")
	if err != nil {
		return Size{}, err
	}
	if ispe.end-ispe.body < 12 {
		return Size{}, &FormatError{AVIF, "short ispe box"}
	}
	b, err := r.readExact(ispe.body+4, 8)
	if err != nil {
		return Size{}, boxReadError(err)
	}
	return Size{
		Width:  uint64(binary.BigEndian.Uint32(b[0:4])),
		Height: uint64(binary.BigEndian.Uint32(b[4:8])),
	}, nil
}
