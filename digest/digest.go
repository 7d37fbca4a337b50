// digest/digest.go
//
// Package digest fingerprints contig sequences with a selectable 64-bit
// hash, so the same reference loaded through different paths (plain vs gzip,
// streamed vs mmapped) can be checked contig-by-contig.
package digest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Algorithm identifies the hash used for contig fingerprints.
type Algorithm string

const (
	XXH64   Algorithm = "xxh64"
	XXH3    Algorithm = "xxh3"
	Murmur3 Algorithm = "murmur3"
	None    Algorithm = "none"
)

// Parse maps a CLI spelling to an Algorithm.
func Parse(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case XXH64, XXH3, Murmur3, None:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unknown digest algorithm %q (want xxh64, xxh3, murmur3, or none)", s)
	}
}

// Sum64 hashes b. None returns 0.
func (a Algorithm) Sum64(b []byte) uint64 {
	switch a {
	case XXH64:
		return xxhash.Sum64(b)
	case XXH3:
		return xxh3.Hash(b)
	case Murmur3:
		return murmur3.Sum64(b)
	default:
		return 0
	}
}

// Hex returns the fingerprint of b as 16 lowercase hex digits, or "" for
// None.
func (a Algorithm) Hex(b []byte) string {
	if a == None {
		return ""
	}
	return fmt.Sprintf("%016x", a.Sum64(b))
}

func (a Algorithm) String() string { return string(a) }
