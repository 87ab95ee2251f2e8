package record

import (
	"fmt"
	"strconv"
	"strings"
)

// BatchSuffix marks the batch step sub-record of a job in the JobID column.
const BatchSuffix = ".batch"

// MergeBatch folds batch-step sub-records into their parent job records.  A
// record without the batch marker opens a new current job; a record with the
// marker must belong to the current job once the marker is stripped, and
// contributes its MaxRSS (the batch step is where the resource usage of most
// non-MPI jobs is accounted).  A batch record whose parent is not the
// current job means the input is out of order or misparsed and is a fatal
// inconsistency.
//
// When minID is non-nil, records whose marker-stripped JobID parses as an
// integer below *minID are skipped before any merge logic; identifiers that
// do not parse are never skipped.
func MergeBatch(records []*Record, minID *int64) ([]*Record, error) {
	merged := make([]*Record, 0, len(records))
	var current *Record
	for _, r := range records {
		id, _ := r.Get("JobID")
		stripped := strings.TrimSuffix(id, BatchSuffix)
		if minID != nil {
			if n, err := strconv.ParseInt(stripped, 10, 64); err == nil && n < *minID {
				continue
			}
		}
		if !strings.HasSuffix(id, BatchSuffix) {
			// The previous job, if any, had no batch step.
			if current != nil {
				merged = append(merged, current)
			}
			current = r
			continue
		}
		if current == nil {
			return merged, fmt.Errorf("Batch record without a job record:\n%s", r)
		}
		if cid, _ := current.Get("JobID"); cid != stripped {
			return merged, fmt.Errorf("Batch record does not match current job record:\n%s\n%s", current, r)
		}
		if v, found := r.Get("MaxRSS"); found && current.Has("MaxRSS") {
			current.Set("MaxRSS", v)
		}
		merged = append(merged, current)
		current = nil
	}
	if current != nil {
		merged = append(merged, current)
	}
	return merged, nil
}
