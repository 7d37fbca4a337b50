package cliutil

import (
	"flag"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.String("reference", "", "")
	fs.Bool("quiet", false, "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := newFS()
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"chr1", "--reference", "ref.fa", "--quiet", "chr2:0-5", "--reference=alt.fa",
	})
	wantFlags := []string{"--reference", "ref.fa", "--quiet", "--reference=alt.fa"}
	wantPos := []string{"chr1", "chr2:0-5"}
	if !reflect.DeepEqual(flagArgs, wantFlags) {
		t.Fatalf("flags %v, want %v", flagArgs, wantFlags)
	}
	if !reflect.DeepEqual(posArgs, wantPos) {
		t.Fatalf("positionals %v, want %v", posArgs, wantPos)
	}
}

func TestSplitDoubleDash(t *testing.T) {
	fs := newFS()
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"--quiet", "--", "--reference", "chr1",
	})
	if !reflect.DeepEqual(flagArgs, []string{"--quiet"}) {
		t.Fatalf("flags %v", flagArgs)
	}
	if !reflect.DeepEqual(posArgs, []string{"--reference", "chr1"}) {
		t.Fatalf("positionals %v", posArgs)
	}
}

func TestBoolFlags(t *testing.T) {
	m := BoolFlags(newFS())
	if !m["quiet"] || m["reference"] {
		t.Fatalf("bool flags: %v", m)
	}
}
