// internal/output/json.go
package output

import (
	"io"

	"refgenome/internal/jsonutil"
)

// WriteContigsJSON writes the contig listing as a single pretty JSON array.
func WriteContigsJSON(w io.Writer, list []ContigRow) error {
	if list == nil {
		list = []ContigRow{}
	}
	return jsonutil.EncodePretty(w, list)
}

// WriteRegionsJSON writes extracted regions as a single pretty JSON array.
func WriteRegionsJSON(w io.Writer, list []RegionRow) error {
	if list == nil {
		list = []RegionRow{}
	}
	return jsonutil.EncodePretty(w, list)
}
