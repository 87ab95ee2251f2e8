package record

import (
	"strings"
	"testing"
)

func job(id, maxrss string) *Record {
	r := NewRecord()
	r.Set("JobID", id)
	r.Set("MaxRSS", maxrss)
	return r
}

func TestMergeBatch(t *testing.T) {
	records := []*Record{
		job("100", "."),
		job("100.batch", "700"),
		job("101", "."),
		job("102", "."),
		job("102.batch", "900"),
	}
	merged, err := MergeBatch(records, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 3 {
		t.Fatalf("%d merged", len(merged))
	}
	wantIDs := []string{"100", "101", "102"}
	wantRSS := []string{"700", ".", "900"}
	for i, m := range merged {
		if v, _ := m.Get("JobID"); v != wantIDs[i] {
			t.Fatalf("JobID[%d] %q", i, v)
		}
		if v, _ := m.Get("MaxRSS"); v != wantRSS[i] {
			t.Fatalf("MaxRSS[%d] %q", i, v)
		}
	}
}

func TestMergeBatchMismatch(t *testing.T) {
	records := []*Record{
		job("100", "."),
		job("999.batch", "700"),
		job("101", "."),
	}
	_, err := MergeBatch(records, nil)
	if err == nil {
		t.Fatal("want mismatch error")
	}
	// Both offending records are named
	if !strings.Contains(err.Error(), "JobID=100") || !strings.Contains(err.Error(), "JobID=999.batch") {
		t.Fatalf("error %q", err.Error())
	}
}

func TestMergeBatchOrphan(t *testing.T) {
	if _, err := MergeBatch([]*Record{job("100.batch", "1")}, nil); err == nil {
		t.Fatal("want orphan error")
	}
}

func TestMergeBatchMinID(t *testing.T) {
	minID := int64(101)
	records := []*Record{
		job("100", "."),
		job("100.batch", "700"),
		job("101", "."),
		job("abc", "."), // non-numeric IDs are never skipped
	}
	merged, err := MergeBatch(records, &minID)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 2 {
		t.Fatalf("%d merged", len(merged))
	}
	if v, _ := merged[0].Get("JobID"); v != "101" {
		t.Fatalf("JobID %q", v)
	}
	if v, _ := merged[1].Get("JobID"); v != "abc" {
		t.Fatalf("JobID %q", v)
	}
}
