// internal/region/region.go
package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a parsed query: a bare contig name, or a 0-based end-exclusive
// coordinate range on one.
type Region struct {
	Raw   string // the original spelling, kept for output labels
	Name  string
	Start int
	End   int
	Whole bool // bare name, no coordinates
}

// Parse accepts "name" or "name:start-end" (0-based, end exclusive). The
// split is on the last ':' so contig names containing colons still work.
// start > end is rejected here, before it can reach the store's contract
// panic — a bad region string is user input, not a program bug.
func Parse(s string) (Region, error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		if s == "" {
			return Region{}, fmt.Errorf("empty region")
		}
		return Region{Raw: s, Name: s, Whole: true}, nil
	}
	name, span := s[:i], s[i+1:]
	if name == "" {
		return Region{}, fmt.Errorf("region %q: missing contig name", s)
	}
	j := strings.IndexByte(span, '-')
	if j < 0 {
		return Region{}, fmt.Errorf("region %q: want name:start-end", s)
	}
	start, err := strconv.Atoi(span[:j])
	if err != nil {
		return Region{}, fmt.Errorf("region %q: bad start: %v", s, err)
	}
	end, err := strconv.Atoi(span[j+1:])
	if err != nil {
		return Region{}, fmt.Errorf("region %q: bad end: %v", s, err)
	}
	if start < 0 || end < 0 {
		return Region{}, fmt.Errorf("region %q: coordinates must be >= 0", s)
	}
	if start > end {
		return Region{}, fmt.Errorf("region %q: start %d exceeds end %d", s, start, end)
	}
	return Region{Raw: s, Name: name, Start: start, End: end}, nil
}
