package fasta

import (
	"errors"
	"strings"
	"testing"
)

func TestReadAllBasic(t *testing.T) {
	in := ">chr1 Homo sapiens chromosome 1\nACGT\nacgt\n\n>chr2\nTT\nTT\n"
	recs, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID != "chr1" || string(recs[0].Seq) != "ACGTacgt" {
		t.Fatalf("record 0: %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "chr2" || string(recs[1].Seq) != "TTTT" {
		t.Fatalf("record 1: %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestReadAllCRLF(t *testing.T) {
	in := ">a\r\nAC\r\nGT\r\n"
	recs, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 1 || string(recs[0].Seq) != "ACGT" {
		t.Fatalf("CRLF handling: %+v", recs)
	}
}

func TestReadAllTabDelimitedHeader(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(">name\tdesc\nAC\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if recs[0].ID != "name" {
		t.Fatalf("want ID %q, got %q", "name", recs[0].ID)
	}
}

func TestReadAllEmptyInput(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(""))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want no records, got %d", len(recs))
	}
}

func TestSequenceBeforeHeaderIsFormatError(t *testing.T) {
	_, err := ReadAll(strings.NewReader("ACGT\n>a\nAC\n"))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}

func TestEmptyIdentifierIsFormatError(t *testing.T) {
	_, err := ReadAll(strings.NewReader(">\nACGT\n"))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}

func TestStreamRecordsEmitErrorStopsScan(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := StreamRecords(strings.NewReader(">a\nAC\n>b\nGT\n"), func(Record) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want emit error back, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("emit should be called once, got %d", calls)
	}
}

func TestStreamRecordsRecordOwnsSeq(t *testing.T) {
	// Records must not share backing storage with each other.
	var recs []Record
	err := StreamRecords(strings.NewReader(">a\nAAAA\n>b\nCCCC\n"), func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(recs[0].Seq) != "AAAA" || string(recs[1].Seq) != "CCCC" {
		t.Fatalf("records alias each other: %q %q", recs[0].Seq, recs[1].Seq)
	}
}
