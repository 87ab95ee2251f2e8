// The record package implements the data pipeline between raw sacct output
// and the printable table: parsing, unit normalization, batch-step merging,
// and sorting.

package record

import (
	"strings"
)

// Record is one row of sacct output: an ordered mapping from column name to
// string value.  Column names are stored with the capitalization sacct
// returned but are looked up case-insensitively.  Stored keys are never
// rewritten; the first spelling seen is canonical.
type Record struct {
	keys   []string          // canonical names, in insertion order
	values map[string]string // canonical name -> value
	index  map[string]string // lowercased name -> canonical name
}

func NewRecord() *Record {
	return &Record{
		values: make(map[string]string),
		index:  make(map[string]string),
	}
}

// Set stores value under key, adding the column if it is new.  An existing
// column is matched case-insensitively and keeps its canonical spelling.
func (r *Record) Set(key, value string) {
	canonical, found := r.index[strings.ToLower(key)]
	if !found {
		canonical = key
		r.index[strings.ToLower(key)] = key
		r.keys = append(r.keys, key)
	}
	r.values[canonical] = value
}

func (r *Record) Get(key string) (string, bool) {
	canonical, found := r.index[strings.ToLower(key)]
	if !found {
		return "", false
	}
	return r.values[canonical], true
}

func (r *Record) Has(key string) bool {
	_, found := r.index[strings.ToLower(key)]
	return found
}

// Keys returns the column names in insertion order.  The slice is shared,
// callers must not mutate it.
func (r *Record) Keys() []string {
	return r.keys
}

// Values returns the column values in insertion order.
func (r *Record) Values() []string {
	vs := make([]string, len(r.keys))
	for i, k := range r.keys {
		vs[i] = r.values[k]
	}
	return vs
}

// String renders the record on the sacct wire format, for diagnostics.
func (r *Record) String() string {
	var b strings.Builder
	for i, k := range r.keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(r.values[k])
	}
	return b.String()
}
