// genome/genome.go
//
// Package genome holds a reference genome in memory: named contigs with
// insertion order preserved, sequences normalized to upper-case ASCII at
// insertion, and zero-copy bounds-clamped read access. A Genome is built
// once (bulk load or repeated AddContig) by a single goroutine; after that
// the read operations are safe for concurrent use since nothing mutates.
package genome

import (
	"bytes"
	"fmt"
	"log"

	"refgenome/fasta"
)

// WarnFunc receives diagnostic warnings (currently only coordinate clamping
// on Slice). It is an observability signal, never control flow. nil silences
// warnings entirely.
type WarnFunc func(format string, args ...any)

// Genome maps contig names to their normalized sequences and remembers
// first-seen order.
type Genome struct {
	source  string
	keys    []string
	contigs map[string][]byte
	warn    WarnFunc
}

// Empty returns a genome with no contigs and no source path, to be grown via
// AddContig.
func Empty() *Genome {
	return &Genome{
		contigs: make(map[string][]byte),
		warn:    log.Printf,
	}
}

// FromFasta loads a reference genome from a FASTA file, gzip-compressed or
// plain, using the default opener. Any open, read, format, or duplicate-name
// error aborts the whole load; no partially populated genome is returned.
func FromFasta(path string) (*Genome, error) {
	return FromFastaOpener(path, fasta.Open)
}

// FromFastaOpener is FromFasta with an explicit stream opener
// (e.g. fasta.OpenMmap).
func FromFastaOpener(path string, open fasta.OpenFunc) (*Genome, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g := Empty()
	g.source = path
	err = fasta.StreamRecords(rc, func(rec fasta.Record) error {
		return g.AddContig(rec.ID, rec.Seq)
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// SetWarn replaces the warning sink (default log.Printf). Call before the
// genome is shared; it is part of construction, not of the read API.
func (g *Genome) SetWarn(fn WarnFunc) { g.warn = fn }

// Source returns the path the genome was loaded from, or "" for a genome
// built programmatically. Informational only, never used for lookups.
func (g *Genome) Source() string { return g.source }

// ContigNames returns contig names in insertion order. The returned slice is
// the store's own and must not be modified.
func (g *Genome) ContigNames() []string { return g.keys }

// Len returns the number of contigs.
func (g *Genome) Len() int { return len(g.keys) }

// Has reports whether the store holds a contig under name.
func (g *Genome) Has(name string) bool {
	_, ok := g.contigs[name]
	return ok
}

// AddContig inserts one named sequence. The sequence is copied and
// upper-cased; seq itself is never retained or modified. Inserting a name
// already present fails with *DuplicateContigError and leaves the store
// unchanged.
func (g *Genome) AddContig(name string, seq []byte) error {
	if _, dup := g.contigs[name]; dup {
		return &DuplicateContigError{Key: name}
	}
	g.keys = append(g.keys, name)
	g.contigs[name] = bytes.ToUpper(seq)
	return nil
}

// Contig returns the complete normalized sequence for name. The returned
// slice aliases the store's buffer: read-only, valid for the store's
// lifetime. Unknown names fail with *UnknownContigError.
func (g *Genome) Contig(name string) ([]byte, error) {
	full, ok := g.contigs[name]
	if !ok {
		return nil, &UnknownContigError{Key: name}
	}
	return full[:len(full):len(full)], nil
}

// Slice returns the sub-sequence [start, end) of the named contig, 0-based
// and end-exclusive. Coordinates past the contig's length are clamped to it
// with a warning rather than failing, so windowed scans may legitimately
// overrun a contig boundary; a fully out-of-range query yields an empty,
// non-nil slice. start > end or a negative start is a caller bug and panics.
// The returned slice aliases the store's buffer, same terms as Contig.
func (g *Genome) Slice(name string, start, end int) ([]byte, error) {
	full, ok := g.contigs[name]
	if !ok {
		return nil, &UnknownContigError{Key: name}
	}
	if start < 0 || start > end {
		panic(fmt.Sprintf("genome: invalid range [%d, %d) for contig %q", start, end, name))
	}
	ts, te := start, end
	if ts > len(full) {
		g.warnf("genome: Slice(%q, %d, %d): truncated start to %d", name, start, end, len(full))
		ts = len(full)
	}
	if te > len(full) {
		g.warnf("genome: Slice(%q, %d, %d): truncated end to %d", name, start, end, len(full))
		te = len(full)
	}
	return full[ts:te:te], nil
}

func (g *Genome) warnf(format string, args ...any) {
	if g.warn != nil {
		g.warn(format, args...)
	}
}
