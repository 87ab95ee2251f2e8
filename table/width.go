package table

import (
	"strings"

	"xacct/record"
)

// widthPad is the fixed gap between columns in aligned mode.
const widthPad = 2

// ColumnWidths computes the width of each column as the maximum printable
// width across the header and all records, plus the fixed padding.  When
// color is enabled the values are colorized first so that measurement sees
// exactly what will be printed (the escapes themselves never count).  A
// trailing batch marker on the JobID column is not counted either.
func ColumnWidths(header []string, records []*record.Record, color bool) []int {
	widths := make([]int, len(header))
	measure := func(values []string) {
		if color {
			values = Colorize(values)
		}
		for i, v := range values {
			if i >= len(widths) {
				break
			}
			v = StripEscapes(v)
			if strings.EqualFold(header[i], "jobid") {
				v = strings.TrimSuffix(v, record.BatchSuffix)
			}
			if w := PrintableWidth(v); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, r := range records {
		measure(r.Values())
	}
	for i := range widths {
		widths[i] += widthPad
	}
	return widths
}
