// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

// WriteRegionsFASTA writes extracted regions as FASTA records. Empty
// (fully clamped) regions are skipped rather than emitted as bare headers.
func WriteRegionsFASTA(w io.Writer, list []RegionRow) error {
	for _, r := range list {
		if r.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s start=%d end=%d len=%d source_file=%s\n%s\n",
			r.Region, r.Start, r.End, r.Length, r.SourceFile, r.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}
