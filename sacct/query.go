// The sacct package builds and runs the sacct query.

package sacct

import (
	"strings"
)

// FmtToken expands, in place, to the default column set in a -format list.
const FmtToken = "FMT"

// DefaultFields is the default column set.  The %50 width hint on JobName is
// passed to sacct verbatim; it is not meaningful to this program.
var DefaultFields = []string{
	"JobID",
	"JobName%50",
	"NodeList",
	"MaxRSS",
	"ReqMem",
	"AllocCPUS",
	"State",
	"StateSince",
	"Elapsed",
}

// ExpandFormat resolves the requested column list: every FMT token is
// replaced by the default column set (spliced in place for the first one)
// and JobID is appended if absent, since the merge step needs it.
func ExpandFormat(requested []string) []string {
	fields := make([]string, 0, len(requested))
	expanded := false
	for _, f := range requested {
		if f == FmtToken {
			if !expanded {
				fields = append(fields, DefaultFields...)
				expanded = true
			}
			continue
		}
		fields = append(fields, f)
	}
	if !hasField(fields, "jobid") {
		fields = append(fields, "JobID")
	}
	return fields
}

// DisplayColumns strips the %N width-hint suffixes, yielding the column
// names used for record lookup and table headers.
func DisplayColumns(fields []string) []string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = stripHint(f)
	}
	return cols
}

// QueryFields computes the field list to request from sacct: the requested
// fields minus StateSince, which sacct does not know, plus any of Submit,
// Start, and End not already requested when StateSince must be derived.  The
// helper fields are dropped again by the display projection.
func QueryFields(fields []string) (query []string, wantStateSince bool) {
	query = make([]string, 0, len(fields)+3)
	for _, f := range fields {
		if strings.ToLower(stripHint(f)) == "statesince" {
			wantStateSince = true
			continue
		}
		query = append(query, f)
	}
	if wantStateSince {
		for _, helper := range []string{"Submit", "Start", "End"} {
			if !hasField(query, strings.ToLower(helper)) {
				query = append(query, helper)
			}
		}
	}
	return query, wantStateSince
}

func stripHint(field string) string {
	name, _, _ := strings.Cut(field, "%")
	return name
}

func hasField(fields []string, lowerName string) bool {
	for _, f := range fields {
		if strings.ToLower(stripHint(f)) == lowerName {
			return true
		}
	}
	return false
}
