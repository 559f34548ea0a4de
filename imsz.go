// Package imsz reports the format and pixel dimensions of image files by
// reading only the few header bytes that hold them.
//
// Supported formats are GIF, PNG, BMP, JPEG, WEBP, QOI, PSD, XCF, ICO,
// AVIF and TIFF. Pixel data is never decoded.
package imsz

import (
	"errors"
	"io"
)

// ImageFormat identifies an image container format. The numeric values
// are stable.
type ImageFormat int

const (
	Unknown ImageFormat = iota
	GIF
	PNG
	BMP
	JPEG
	WEBP
	QOI
	PSD
	XCF
	ICO
	AVIF
	TIFF
)

var formatNames = [...]string{
	Unknown: "(unknown)",
	GIF:     "gif",
	PNG:     "png",
	BMP:     "bmp",
	JPEG:    "jpeg",
	WEBP:    "webp",
	QOI:     "qoi",
	PSD:     "psd",
	XCF:     "xcf",
	ICO:     "ico",
	AVIF:    "avif",
	TIFF:    "tiff",
}

// FormatName returns the lowercase canonical name of format, or
// "(unknown)" for Unknown and for any value that is not a format.
func FormatName(format int) string {
	if format <= 0 || format >= len(formatNames) {
		return formatNames[Unknown]
	}
	return formatNames[format]
}

func (f ImageFormat) String() string {
	return FormatName(int(f))
}

// Size is the pixel size of an image.
type Size struct {
	Width  uint64
	Height uint64
}

// ImageInfo is the result of probing an image.
type ImageInfo struct {
	Format ImageFormat
	Width  uint64
	Height uint64
}

// DecodeSizeAt returns the format and dimensions of the image held in r.
//
// On a *FormatError the returned Format is the format whose signature
// matched, so callers can report which parser rejected the input. On
// every other error it is Unknown.
func DecodeSizeAt(r io.ReaderAt) (ImageInfo, error) {
	src := source{r: r}
	f, err := sniff(src)
	if err != nil {
		return ImageInfo{}, err
	}
	sz, err := f.decode(src)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			return ImageInfo{Format: f.tag}, err
		}
		return ImageInfo{}, err
	}
	if sz.Width == 0 || sz.Height == 0 {
		return ImageInfo{Format: f.tag}, &FormatError{f.tag, "zero width or height"}
	}
	return ImageInfo{Format: f.tag, Width: sz.Width, Height: sz.Height}, nil
}

// DecodeSize is like DecodeSizeAt for readers without random access.
// Only the bytes up to the furthest header field are consumed and kept.
func DecodeSize(r io.Reader) (ImageInfo, error) {
	return DecodeSizeAt(newReaderAt(r))
}

// DecodeFile opens the named file and returns its format and dimensions.
// The file is closed before DecodeFile returns.
func DecodeFile(name string) (ImageInfo, error) {
	f, err := Open(name)
	if err != nil {
		return ImageInfo{}, err
	}
	defer f.Close()
	return DecodeSizeAt(f)
}

// Imsz probes the named file and stores the result in info, returning
// one of OK, IOErrorCode, ParserErrorCode, UnsupportedErrorCode or a
// positive operating system error number.
//
// info is written only on success, except that on ParserErrorCode its
// Format is set to the format that failed to parse. info may be nil.
func Imsz(name string, info *ImageInfo) int {
	got, err := DecodeFile(name)
	code := Code(err)
	if info != nil {
		switch code {
		case OK:
			*info = got
		case ParserErrorCode:
			info.Format = got.Format
		}
	}
	return code
}
