// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imsz

import (
	"bytes"
	"fmt"

	"golang.org/x/image/riff"
	"golang.org/x/image/vp8"
	"golang.org/x/image/vp8l"
)

var (
	fccVP8  = riff.FourCC{'V', 'P', '8', ' '}
	fccVP8L = riff.FourCC{'V', 'P', '8', 'L'}
	fccVP8X = riff.FourCC{'V', 'P', '8', 'X'}
	fccWEBP = riff.FourCC{'W', 'E', 'B', 'P'}
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8

	// Bytes of each first-chunk payload needed for the dimensions.
	vp8FrameHeaderLen = 10
	vp8lHeaderLen     = 5
	vp8xHeaderLen     = 10
)

// decodeWEBP reads the first chunk of a RIFF WEBP file. A VP8X chunk
// carries the canvas size, which is reported as is; the VP8 or VP8L
// chunks that follow it are not consulted.
func decodeWEBP(r source) (Size, error) {
	hdr, err := r.readExact(0, riffHeaderSize+chunkHeaderSize)
	if err != nil {
		return Size{}, err
	}
	formType, riffReader, err := riff.NewReader(bytes.NewReader(hdr))
	if err != nil {
		return Size{}, &FormatError{WEBP, err.Error()}
	}
	if formType != fccWEBP {
		return Size{}, &FormatError{WEBP, "not a WEBP form"}
	}
	chunkID, chunkLen, _, err := riffReader.Next()
	if err != nil {
		return Size{}, &FormatError{WEBP, "first chunk: " + err.Error()}
	}
	payload := int64(riffHeaderSize + chunkHeaderSize)

	switch chunkID {
	case fccVP8:
		if chunkLen < vp8FrameHeaderLen {
			return Size{}, &FormatError{WEBP, "short VP8 chunk"}
		}
		b, err := r.readExact(payload, vp8FrameHeaderLen)
		if err != nil {
			return Size{}, err
		}
		d := vp8.NewDecoder()
		d.Init(bytes.NewReader(b), len(b))
		fh, err := d.DecodeFrameHeader()
		if err != nil {
			return Size{}, &FormatError{WEBP, err.Error()}
		}
		if !fh.KeyFrame {
			return Size{}, &FormatError{WEBP, "VP8 chunk does not start with a key frame"}
		}
		return Size{Width: uint64(fh.Width), Height: uint64(fh.Height)}, nil

	case fccVP8L:
		if chunkLen < vp8lHeaderLen {
			return Size{}, &FormatError{WEBP, "short VP8L chunk"}
		}
		b, err := r.readExact(payload, vp8lHeaderLen)
		if err != nil {
			return Size{}, err
		}
		config, err := vp8l.DecodeConfig(bytes.NewReader(b))
		if err != nil {
			return Size{}, &FormatError{WEBP, err.Error()}
		}
		return Size{Width: uint64(config.Width), Height: uint64(config.Height)}, nil

	case fccVP8X:
		if chunkLen < vp8xHeaderLen {
			return Size{}, &FormatError{WEBP, "short VP8X chunk"}
		}
		b, err := r.readExact(payload, vp8xHeaderLen)
		if err != nil {
			return Size{}, err
		}
		// Flags and three reserved bytes precede the canvas size.
		widthMinusOne := uint64(b[4]) | uint64(b[5])<<8 | uint64(b[6])<<16
		heightMinusOne := uint64(b[7]) | uint64(b[8])<<8 | uint64(b[9])<<16
		return Size{Width: widthMinusOne + 1, Height: heightMinusOne + 1}, nil
	}
	return Size{}, &FormatError{WEBP, fmt.Sprintf("unknown first chunk %q", chunkID[:])}
}
