// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imsz

import (
	"errors"
	"io"
	"os"
	"sync"
)

// A File is an image file opened for probing. It is safe to Close a File
// from another goroutine while a probe is reading from it; the probe then
// fails with an *IOError.
type File struct {
	f    *os.File
	once sync.Once
	err  error
}

// Open opens the named file for probing.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}
	return &File{f: f}, nil
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.f.ReadAt(p, off)
}

// Close releases the underlying file. Calling it more than once returns
// the result of the first call.
func (f *File) Close() error {
	f.once.Do(func() {
		f.err = f.f.Close()
	})
	return f.err
}

// source is the byte source the format parsers read from.
type source struct {
	r io.ReaderAt
}

// readExact reads exactly n bytes at off. A read that ends early is an
// *IOError wrapping io.EOF when nothing was available at off and
// io.ErrUnexpectedEOF otherwise.
func (s source) readExact(off int64, n int) ([]byte, error) {
	if off < 0 {
		return nil, &IOError{Op: "read", Off: off, Err: errors.New("negative offset")}
	}
	p := make([]byte, n)
	m, err := s.r.ReadAt(p, off)
	if m == n {
		return p, nil
	}
	if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
		if m == 0 {
			err = io.EOF
		} else {
			err = io.ErrUnexpectedEOF
		}
	}
	return nil, &IOError{Op: "read", Off: off, Err: err}
}

// atEOF reports whether err is a read that found no bytes at all at the
// requested offset.
func atEOF(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe) && ioe.Err == io.EOF
}

// chunkSize is how much buffer grows by per read of the underlying
// io.Reader.
const chunkSize = 64 << 10

// buffer buffers an io.Reader to satisfy io.ReaderAt. It only grows as
// far as the data the reader actually delivers, so a huge offset taken
// from untrusted input cannot force a huge allocation.
type buffer struct {
	r   io.Reader
	buf []byte
	err error
}

// fill reads data from b.r until the buffer contains at least end bytes
// or the reader is exhausted.
func (b *buffer) fill(end int64) error {
	for int64(len(b.buf)) < end && b.err == nil {
		want := end - int64(len(b.buf))
		if want > chunkSize {
			want = chunkSize
		}
		m := len(b.buf)
		b.buf = append(b.buf, make([]byte, want)...)
		n, err := io.ReadFull(b.r, b.buf[m:])
		b.buf = b.buf[:m+n]
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			b.err = err
		}
	}
	if int64(len(b.buf)) < end {
		return b.err
	}
	return nil
}

func (b *buffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("imsz: negative offset")
	}
	err := b.fill(off + int64(len(p)))
	if off >= int64(len(b.buf)) {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	n := copy(p, b.buf[off:])
	if n < len(p) {
		if err == nil {
			err = io.EOF
		}
		return n, err
	}
	return n, nil
}

// newReaderAt converts an io.Reader into an io.ReaderAt.
func newReaderAt(r io.Reader) io.ReaderAt {
	if ra, ok := r.(io.ReaderAt); ok {
		return ra
	}
	return &buffer{r: r}
}
