package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"xacct/record"
)

type Options struct {
	Tsv   bool // tab-separated values, no alignment, no color
	Color bool // colorize states (ignored in TSV mode)
}

// Render writes the table: header, records, and in aligned mode the header
// once more at the bottom.  In TSV mode values are joined with tabs and
// printed raw.  Write errors are returned; the caller should treat a broken
// pipe as normal termination (see IsBrokenPipe).
func Render(w io.Writer, header []string, records []*record.Record, opts Options) error {
	out := bufio.NewWriter(w)
	widths := []int(nil)
	if !opts.Tsv {
		widths = ColumnWidths(header, records, opts.Color)
	}
	if err := renderLine(out, header, widths, opts); err != nil {
		return err
	}
	for _, r := range records {
		if err := renderLine(out, r.Values(), widths, opts); err != nil {
			return err
		}
	}
	if !opts.Tsv {
		if err := renderLine(out, header, widths, opts); err != nil {
			return err
		}
	}
	return out.Flush()
}

func renderLine(out *bufio.Writer, values []string, widths []int, opts Options) error {
	_, err := fmt.Fprintln(out, TabulateLine(values, widths, opts))
	return err
}

// TabulateLine formats one row.  In aligned mode each cell is left-aligned
// and padded to its column width measured in printable cells, so invisible
// color escapes don't skew the alignment.
func TabulateLine(values []string, widths []int, opts Options) string {
	if opts.Tsv {
		return strings.Join(values, "\t")
	}
	if opts.Color {
		values = Colorize(values)
	}
	var b strings.Builder
	for i, v := range values {
		b.WriteString(v)
		if pad := widths[i] - PrintableWidth(v); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// IsBrokenPipe reports whether err is the result of the consumer of our
// output going away, as when piping into `head`.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
