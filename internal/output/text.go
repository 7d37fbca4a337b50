// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

const (
	contigTSVHeader = "source_file\tcontig\tlength\tdigest"
	regionTSVHeader = "region\tsource_file\tcontig\tstart\tend\tlength\tseq"
)

// WriteContigsText writes the contig listing as a tab-delimited table.
func WriteContigsText(w io.Writer, list []ContigRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, contigTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		d := r.Digest
		if d == "" {
			d = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.SourceFile, r.Name, r.Length, d); err != nil {
			return err
		}
	}
	return nil
}

// WriteRegionsText writes extracted regions as a tab-delimited table.
func WriteRegionsText(w io.Writer, list []RegionRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, regionTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.Region, r.SourceFile, r.Name, r.Start, r.End, r.Length, r.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}
