// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"refgenome/fasta"
	"refgenome/genome"
	"refgenome/internal/cli"
	"refgenome/internal/output"
	"refgenome/internal/region"
	"refgenome/internal/version"
)

// Run parses argv, loads the reference(s), and either lists contigs or
// extracts regions. Exit codes: 0 ok, 2 usage/validation, 3 runtime,
// 130 cancelled.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("refgenome")
	fs.SetOutput(stderr)
	opt, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if opt.Version {
		fmt.Fprintln(stdout, version.Version)
		return 0
	}

	// Region strings are user input: reject bad ones before any file I/O.
	regs := make([]region.Region, 0, len(opt.Regions))
	for _, s := range opt.Regions {
		r, err := region.Parse(s)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		regs = append(regs, r)
	}

	open := fasta.Open
	if opt.Mmap {
		open = fasta.OpenMmap
	}
	var warn genome.WarnFunc
	if !opt.Quiet {
		warn = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	// Each reference loads in its own goroutine; a single store is still
	// built by exactly one of them.
	genomes := make([]*genome.Genome, len(opt.References))
	grp, gctx := errgroup.WithContext(ctx)
	for i, path := range opt.References {
		i, path := i, path
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g, err := genome.FromFastaOpener(path, open)
			if err != nil {
				return err
			}
			g.SetWarn(warn)
			genomes[i] = g
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}

	outw := bufio.NewWriter(stdout)
	if len(regs) == 0 {
		err = listContigs(outw, genomes, opt)
	} else {
		err = extractRegions(outw, genomes, regs, opt)
	}
	if err == nil {
		err = outw.Flush()
	}
	if output.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	return 0
}

func listContigs(w io.Writer, genomes []*genome.Genome, opt cli.Options) error {
	var rows []output.ContigRow
	for _, g := range genomes {
		for _, name := range g.ContigNames() {
			seq, err := g.Contig(name)
			if err != nil {
				return err
			}
			rows = append(rows, output.ContigRow{
				SourceFile: g.Source(),
				Name:       name,
				Length:     len(seq),
				Digest:     opt.Digest.Hex(seq),
			})
		}
	}
	if opt.Output == "json" {
		return output.WriteContigsJSON(w, rows)
	}
	return output.WriteContigsText(w, rows, opt.Header)
}

func extractRegions(w io.Writer, genomes []*genome.Genome, regs []region.Region, opt cli.Options) error {
	rows := make([]output.RegionRow, 0, len(regs))
	for _, r := range regs {
		g := findContig(genomes, r.Name)
		if g == nil {
			return &genome.UnknownContigError{Key: r.Name}
		}
		full, err := g.Contig(r.Name)
		if err != nil {
			return err
		}
		start, end := r.Start, r.End
		if r.Whole {
			start, end = 0, len(full)
		}
		seq, err := g.Slice(r.Name, start, end)
		if err != nil {
			return err
		}
		cs := min(start, len(full))
		rows = append(rows, output.RegionRow{
			Region:     r.Raw,
			SourceFile: g.Source(),
			Name:       r.Name,
			Start:      cs,
			End:        cs + len(seq),
			Length:     len(seq),
			Seq:        string(seq),
		})
	}
	switch opt.Output {
	case "json":
		return output.WriteRegionsJSON(w, rows)
	case "fasta":
		return output.WriteRegionsFASTA(w, rows)
	default:
		return output.WriteRegionsText(w, rows, opt.Header)
	}
}

// findContig resolves a contig name against the references in load order.
func findContig(genomes []*genome.Genome, name string) *genome.Genome {
	for _, g := range genomes {
		if g.Has(name) {
			return g
		}
	}
	return nil
}
