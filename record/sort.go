package record

import (
	"sort"
	"strings"

	"xacct/status"
)

// SortBy stably sorts records by the given keys.  Keys are applied in
// reverse declaration order so that the first declared key ends up dominant;
// a trailing "-" on a key sorts that key descending.  A key not present in
// the records is warned about and skipped, leaving the prior order intact.
func SortBy(records []*Record, keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		descending := strings.HasSuffix(key, "-")
		key = strings.TrimSuffix(key, "-")
		if len(records) == 0 {
			continue
		}
		if !records[0].Has(key) {
			status.Warningf("Sort key %s not found", key)
			continue
		}
		sort.SliceStable(records, func(a, b int) bool {
			va, _ := records[a].Get(key)
			vb, _ := records[b].Get(key)
			if descending {
				return vb < va
			}
			return va < vb
		})
	}
}
