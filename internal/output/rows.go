// internal/output/rows.go
package output

// ContigRow is one contig-listing line (stable wire schema for json output).
type ContigRow struct {
	SourceFile string `json:"source_file"`
	Name       string `json:"contig"`
	Length     int    `json:"length"`
	Digest     string `json:"digest,omitempty"`
}

// RegionRow is one extracted region. Start/End are the effective (clamped)
// coordinates actually returned, not necessarily those requested.
type RegionRow struct {
	Region     string `json:"region"`
	SourceFile string `json:"source_file"`
	Name       string `json:"contig"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Length     int    `json:"length"`
	Seq        string `json:"seq"`
}
