// fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
)

// GzExt is the archive suffix that selects gzip decoding. Detection is an
// exact, case-sensitive match on the path's final extension; a renamed file
// is deliberately not sniffed (see OpenFunc for substituting that policy).
const GzExt = ".gz"

// OpenFunc opens a path and returns a buffered, decoded FASTA byte stream.
// It is the seam between the store and the filesystem: Open is the default,
// OpenMmap the memory-mapped variant, and callers may supply their own.
type OpenFunc func(path string) (io.ReadCloser, error)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// lazyGzipReader defers gzip.NewReader until the first Read so that a
// malformed stream fails at read time, through the parser, rather than at
// open time. The underlying gzip reader is in multistream mode, so a file
// produced by concatenating independent gzip members (bgzip, pigz output)
// decodes as one continuous stream.
type lazyGzipReader struct {
	src io.Reader
	zr  *gzip.Reader
	err error
}

func (l *lazyGzipReader) Read(p []byte) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if l.zr == nil {
		zr, err := gzip.NewReader(l.src)
		if err != nil {
			l.err = err
			return 0, err
		}
		l.zr = zr
	}
	return l.zr.Read(p)
}

func (l *lazyGzipReader) Close() error {
	if l.zr != nil {
		return l.zr.Close()
	}
	return nil
}

// wrapDecoded applies the extension gate shared by Open and OpenMmap.
func wrapDecoded(path string, r io.Reader, closers ...io.Closer) io.ReadCloser {
	if filepath.Ext(path) == GzExt {
		lz := &lazyGzipReader{src: r}
		return &multiReadCloser{
			Reader:  bufio.NewReaderSize(lz, 64*1024),
			closers: append([]io.Closer{lz}, closers...),
		}
	}
	return &multiReadCloser{Reader: r, closers: closers}
}

// Open opens path and returns a buffered stream of FASTA text, transparently
// decoding gzip when the final extension is exactly ".gz".
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wrapDecoded(path, bufio.NewReaderSize(fh, 64*1024), fh), nil
}
