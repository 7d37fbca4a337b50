// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"refgenome/digest"
	"refgenome/internal/cliutil"
	"refgenome/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	References []string
	Regions    []string // positionals; empty means "list contigs"

	// Behavior
	Mmap   bool
	Digest digest.Algorithm

	// Output
	Output string
	Header bool // true unless --no-header
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: load a FASTA reference genome, list its contigs or extract regions

Version: %s

Usage:
  %s --reference ref.fa[.gz] [flags]              list contigs
  %s --reference ref.fa[.gz] [flags] region ...   extract regions (name or name:start-end, 0-based half-open)

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers all flags on fs, splits argv into flags and positional
// regions (regions may appear anywhere), and returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var dig string

	var refs stringSlice
	fs.Var(&refs, "reference", "reference FASTA file(s), .gz allowed (repeatable) [*]")

	fs.BoolVar(&opt.Mmap, "mmap", false, "memory-map input files instead of streaming them [false]")
	fs.StringVar(&dig, "digest", string(digest.XXH64), "contig digest in listings: xxh64 | xxh3 | murmur3 | none [xxh64]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | fasta [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress clamp warnings on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.References = refs
	opt.Regions = posArgs
	opt.Header = !noHeader

	// Validation
	if len(opt.References) == 0 {
		return opt, errors.New("at least one --reference file is required")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "fasta" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	alg, err := digest.Parse(dig)
	if err != nil {
		return opt, err
	}
	opt.Digest = alg
	if opt.Output == "fasta" && len(opt.Regions) == 0 {
		return opt, errors.New("--output fasta requires at least one region")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
