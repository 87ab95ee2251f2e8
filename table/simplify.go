package table

import (
	"strings"
	"time"

	"xacct/record"
)

// SimplifyDateTimes rewrites the named timestamp column across all records,
// dropping the parts that today's reader can infer.  Each component of each
// parsed date is compared against today's date independently:
//
//   - all dates are today: keep only the time of day
//   - all dates in today's year and month: "Mon DD HH:MM:SS"
//   - otherwise: full date and time, with the T separator made a space
//
// Values that don't parse keep their text, except that the "Unknown"
// placeholder sacct uses is removed.  A column that isn't present is left
// alone.
//
// Note that comparing against today rather than the dates against each other
// means a job set spanning a day boundary can simplify differently from one
// run to the next; that is how it is meant to work, the tool is for jobs run
// recently.
func SimplifyDateTimes(records []*record.Record, column string, today time.Time) {
	if len(records) == 0 || !records[0].Has(column) {
		return
	}

	parsed := make([]time.Time, len(records))
	isDate := make([]bool, len(records))
	sameYear, sameMonth, sameDay := true, true, true
	for i, r := range records {
		v, _ := r.Get(column)
		t, err := time.Parse(record.SacctTimeFormat, v)
		if err != nil {
			continue
		}
		parsed[i] = t
		isDate[i] = true
		if t.Year() != today.Year() {
			sameYear = false
		}
		if t.Month() != today.Month() {
			sameMonth = false
		}
		if t.Day() != today.Day() {
			sameDay = false
		}
	}

	for i, r := range records {
		v, _ := r.Get(column)
		if !isDate[i] {
			r.Set(column, strings.ReplaceAll(v, "Unknown", ""))
			continue
		}
		switch {
		case sameYear && sameMonth && sameDay:
			v = v[strings.LastIndexByte(v, 'T')+1:]
		case sameYear && sameMonth:
			// Drop the yyyy-mm- prefix, name the weekday instead.
			v = parsed[i].Format("Mon") + " " + strings.ReplaceAll(v[8:], "T", " ")
		default:
			v = strings.ReplaceAll(v, "T", " ")
		}
		r.Set(column, v)
	}
}
