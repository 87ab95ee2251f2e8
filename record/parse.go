package record

import (
	"fmt"
	"strings"
)

// sacct prints this for jobs that never got a node; normalize it to an empty
// field before parsing so it gets the regular empty-value treatment.
const noNodeAssigned = "|None assigned|"

// Parse consumes raw `sacct --parsable2` output (pipe-delimited, header row
// first) and returns one Record per line, projected onto the display
// columns.  MaxRSS and ReqMem are normalized to MiB; if wantStateSince, a
// StateSince column is derived from the Submit, Start, and End fields.
// Fields that are empty after trimming are replaced by "." in the projected
// record.
func Parse(raw string, display []string, wantStateSince bool) ([]*Record, error) {
	raw = strings.ReplaceAll(raw, noNodeAssigned, "||")

	lines := strings.Split(raw, "\n")
	var header []string
	records := make([]*Record, 0)
	lineno := 0
	for _, line := range lines {
		lineno++
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if header == nil {
			header = fields
			continue
		}

		// If there are more fields than header columns then a field value
		// (usually JobName) contains `|`.  Catenate excess fields from the
		// right, the same cleanup sacctd does.
		for len(fields) > len(header) {
			fields[len(fields)-2] += "|" + fields[len(fields)-1]
			fields = fields[:len(fields)-1]
		}
		if len(fields) < len(header) {
			return nil, fmt.Errorf("Line %d: %d fields but %d columns", lineno, len(fields), len(header))
		}

		r := NewRecord()
		for i, name := range header {
			r.Set(name, fields[i])
		}
		if v, found := r.Get("MaxRSS"); found {
			w, err := NormalizeMem(v)
			if err != nil {
				return nil, fmt.Errorf("Line %d: bad MaxRSS: %w", lineno, err)
			}
			r.Set("MaxRSS", w)
		}
		if v, found := r.Get("ReqMem"); found {
			w, err := NormalizeMem(v)
			if err != nil {
				return nil, fmt.Errorf("Line %d: bad ReqMem: %w", lineno, err)
			}
			r.Set("ReqMem", w)
		}
		if wantStateSince {
			submit, _ := r.Get("Submit")
			start, _ := r.Get("Start")
			end, _ := r.Get("End")
			r.Set("StateSince", LatestTimestamp(submit, start, end))
		}

		out := NewRecord()
		for _, name := range display {
			v, found := r.Get(name)
			if !found {
				return nil, fmt.Errorf("Column %s not present in sacct output", name)
			}
			if strings.TrimSpace(v) == "" {
				v = "."
			}
			out.Set(name, v)
		}
		records = append(records, out)
	}
	return records, nil
}
