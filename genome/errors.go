package genome

import "fmt"

// DuplicateContigError reports an insertion under a name the store already
// holds. The store is unchanged when this is returned.
type DuplicateContigError struct {
	Key string
}

func (e *DuplicateContigError) Error() string {
	return fmt.Sprintf("contig key %q is already in the reference genome", e.Key)
}

// UnknownContigError reports a read against a name the store does not hold.
type UnknownContigError struct {
	Key string
}

func (e *UnknownContigError) Error() string {
	return fmt.Sprintf("contig %q is not in the reference genome", e.Key)
}
