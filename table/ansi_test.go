package table

import (
	"testing"
)

func TestStripEscapes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"\x1b[31mFAILED\x1b[0m", "FAILED"},
		{"a\x1b[94mb\x1b[0mc", "abc"},
		{"\x1b[1;32mok\x1b[m", "ok"},
		{"", ""},
		// Unterminated sequences are left alone
		{"x\x1b[31", "x\x1b[31"},
		// A bare escape is not a color sequence
		{"x\x1by", "x\x1by"},
	}
	for _, test := range tests {
		if got := StripEscapes(test.in); got != test.want {
			t.Fatalf("StripEscapes(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestPrintableWidth(t *testing.T) {
	if w := PrintableWidth("\x1b[32mCOMPLETED\x1b[0m"); w != len("COMPLETED") {
		t.Fatalf("width %d", w)
	}
	// Wide runes occupy two cells
	if w := PrintableWidth("日本"); w != 4 {
		t.Fatalf("width %d", w)
	}
}

func TestColorize(t *testing.T) {
	in := []string{"FAILED", "COMPLETED", "RUNNING", "PENDING", "100"}
	out := Colorize(in)
	if out[0] != "\x1b[31mFAILED\x1b[0m" {
		t.Fatalf("FAILED %q", out[0])
	}
	if out[1] != "\x1b[32mCOMPLETED\x1b[0m" {
		t.Fatalf("COMPLETED %q", out[1])
	}
	if out[2] != "\x1b[94mRUNNING\x1b[0m" {
		t.Fatalf("RUNNING %q", out[2])
	}
	if out[3] != "PENDING" || out[4] != "100" {
		t.Fatalf("passthrough %v", out[3:])
	}
	if in[0] != "FAILED" {
		t.Fatal("input modified")
	}
}
