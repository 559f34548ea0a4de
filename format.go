// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imsz

import "io"

// sniffLen is the number of leading bytes inspected to pick a parser.
// It covers every signature including the ftyp brands of AVIF.
const sniffLen = 32

// A format holds an image format's signature and size parser.
type format struct {
	tag   ImageFormat
	magic string
	// brand, if non-nil, further checks the sniffed bytes once magic
	// has matched.
	brand  func(hdr []byte) bool
	decode func(source) (Size, error)
}

// formats is the list of registered formats in priority order. It is
// only appended to by init.
var formats []format

// registerFormat registers an image format for use by DecodeSizeAt.
// Magic is the magic prefix that identifies the format's encoding. The
// magic string can contain "?" wildcards that each match any one byte.
func registerFormat(tag ImageFormat, magic string, decode func(source) (Size, error)) {
	formats = append(formats, format{tag: tag, magic: magic, decode: decode})
}

// registerBrandedFormat is like registerFormat for containers whose
// magic is shared with other formats and which are told apart by brand.
func registerBrandedFormat(tag ImageFormat, magic string, brand func([]byte) bool, decode func(source) (Size, error)) {
	formats = append(formats, format{tag: tag, magic: magic, brand: brand, decode: decode})
}

// match reports whether magic matches b. Magic may contain "?" wildcards.
func match(magic string, b []byte) bool {
	if len(magic) != len(b) {
		return false
	}
	for i, c := range b {
		if magic[i] != c && magic[i] != '?' {
			return false
		}
	}
	return true
}

// sniff determines the format of r's data. A file too short to carry a
// signature it begins like is reported as an *IOError rather than as
// unsupported.
func sniff(r source) (format, error) {
	var buf [sniffLen]byte
	n, err := r.r.ReadAt(buf[:], 0)
	if n < len(buf) && err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return format{}, &IOError{Op: "read", Off: 0, Err: err}
	}
	hdr := buf[:n]
	short := false
	for _, f := range formats {
		if len(hdr) < len(f.magic) {
			if match(f.magic[:len(hdr)], hdr) {
				short = true
			}
			continue
		}
		if match(f.magic, hdr[:len(f.magic)]) && (f.brand == nil || f.brand(hdr)) {
			return f, nil
		}
	}
	if short {
		return format{}, &IOError{Op: "sniff", Off: int64(n), Err: io.ErrUnexpectedEOF}
	}
	return format{}, ErrUnsupported
}
