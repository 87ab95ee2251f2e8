package record

import (
	"time"
)

// SacctTimeFormat is the timestamp format sacct emits, localtime without a
// zone offset.
const SacctTimeFormat = "2006-01-02T15:04:05"

// LatestTimestamp returns the most recent of the given timestamps, ignoring
// any that do not parse on the sacct format.  It returns "" if none parse.
// For this format lexicographic and chronological order coincide, so the
// maximum is computed on the strings directly.
func LatestTimestamp(timepoints ...string) string {
	latest := ""
	for _, tp := range timepoints {
		if _, err := time.Parse(SacctTimeFormat, tp); err != nil {
			continue
		}
		if tp > latest {
			latest = tp
		}
	}
	return latest
}
