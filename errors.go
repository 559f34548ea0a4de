package imsz

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Integer outcome codes of Imsz. Any other non-zero value returned by
// Imsz is an operating system error number and must be treated as a
// fatal I/O failure.
const (
	OK                   = 0
	IOErrorCode          = -1
	ParserErrorCode      = -2
	UnsupportedErrorCode = -3
)

// ErrUnsupported means that the leading bytes matched no known image
// signature.
var ErrUnsupported = errors.New("imsz: unsupported image format")

// A FormatError reports that the input is not a valid image of the
// format whose signature it carries.
type FormatError struct {
	Format ImageFormat
	Msg    string
}

func (e *FormatError) Error() string {
	return "imsz: invalid " + e.Format.String() + ": " + e.Msg
}

// An IOError reports that a required byte range could not be read.
type IOError struct {
	Op  string
	Off int64
	Err error
}

func (e *IOError) Error() string {
	if e.Op == "open" {
		return "imsz: open: " + e.Err.Error()
	}
	return fmt.Sprintf("imsz: %s at offset %d: %v", e.Op, e.Off, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// truncated reports whether err is an IOError caused by the input
// ending early, as opposed to a failure of the underlying storage.
func truncated(err error) bool {
	var ioe *IOError
	if !errors.As(err, &ioe) {
		return false
	}
	return errors.Is(ioe.Err, io.EOF) || errors.Is(ioe.Err, io.ErrUnexpectedEOF)
}

// Code maps an error returned by this package to the integer outcome
// codes used by Imsz.
func Code(err error) int {
	if err == nil {
		return OK
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return ParserErrorCode
	}
	if errors.Is(err, ErrUnsupported) {
		return UnsupportedErrorCode
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return IOErrorCode
}
