package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const plain = ">seq1 description here\nACGT\nacgt\n>seq2\nNNnn\n"

// writeGzMembers writes data as n independently-compressed gzip members
// concatenated into one file, mimicking pigz/bgzip output.
func writeGzMembers(t *testing.T, path string, members ...string) {
	t.Helper()
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, m := range members {
		gw := gzip.NewWriter(fh)
		if _, err := gw.Write([]byte(m)); err != nil {
			t.Fatalf("write gz member: %v", err)
		}
		if err := gw.Close(); err != nil {
			t.Fatalf("close gz member: %v", err)
		}
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}

func readAllAndClose(t *testing.T, rc io.ReadCloser) []byte {
	t.Helper()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return b
}

func TestOpenPlain(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa")
	if err := os.WriteFile(fn, []byte(plain), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := readAllAndClose(t, mustOpen(t, fn))
	if string(got) != plain {
		t.Fatalf("plain passthrough mismatch: %q", got)
	}
}

func TestOpenGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa.gz")
	writeGzMembers(t, fn, plain)
	got := readAllAndClose(t, mustOpen(t, fn))
	if string(got) != plain {
		t.Fatalf("gzip decode mismatch: %q", got)
	}
}

func TestOpenMultiMemberGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa.gz")
	writeGzMembers(t, fn, ">a\nACGT\n", ">b\nTTTT\n")
	got := readAllAndClose(t, mustOpen(t, fn))
	want := ">a\nACGT\n>b\nTTTT\n"
	if string(got) != want {
		t.Fatalf("multi-member gzip: got %q want %q", got, want)
	}
}

func TestOpenExtensionIsCaseSensitive(t *testing.T) {
	// ".GZ" must not trigger decompression; the raw bytes pass through.
	fn := filepath.Join(t.TempDir(), "ref.fa.GZ")
	writeGzMembers(t, fn, plain)
	got := readAllAndClose(t, mustOpen(t, fn))
	if len(got) < 2 || got[0] != 0x1f || got[1] != 0x8b {
		t.Fatalf("expected raw gzip bytes for .GZ suffix, got %q", got[:min(len(got), 8)])
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenMalformedGzipFailsOnRead(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.fa.gz")
	if err := os.WriteFile(fn, []byte("this is not gzip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rc, err := Open(fn)
	if err != nil {
		t.Fatalf("open should defer gzip errors to read time, got: %v", err)
	}
	defer rc.Close()
	if _, err := io.ReadAll(rc); err == nil {
		t.Fatal("expected read error for malformed gzip")
	}
}

func mustOpen(t *testing.T, path string) io.ReadCloser {
	t.Helper()
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	return rc
}
