// fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry: the first whitespace-delimited token of
// the header line, and the concatenated sequence lines (owned copy).
type Record struct {
	ID  string
	Seq []byte
}

// ErrFormat tags malformed FASTA structure, as opposed to I/O failure on the
// underlying stream. Wrapped errors carry the specifics.
var ErrFormat = errors.New("malformed FASTA")

// StreamRecords scans FASTA text from r and calls emit once per record, in
// stream order. A non-nil error from emit stops the scan and is returned
// unchanged. Stream read errors (including gzip corruption from a decoded
// source) and format errors abort the scan.
func StreamRecords(r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id   string
		seen bool
		seq  = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		rec := Record{ID: id, Seq: append([]byte(nil), seq...)}
		seq = seq[:0]
		return emit(rec)
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if seen {
				if err := flush(); err != nil {
					return err
				}
			}
			id = parseHeaderID(line[1:])
			if id == "" {
				return fmt.Errorf("%w: header with empty identifier", ErrFormat)
			}
			seen = true
			continue
		}
		if !seen {
			return fmt.Errorf("%w: sequence data before first header", ErrFormat)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if seen {
		return flush()
	}
	return nil
}

// ReadAll collects every record from r. Convenience wrapper for callers that
// want the whole file at once.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	err := StreamRecords(r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
