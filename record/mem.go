package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeMem converts a sacct memory value to a whole number of MiB.  The
// value may carry a K, M, or G unit suffix and, for ReqMem, a further "n"
// (per node) or "c" (per core) suffix; a value without a unit suffix is in
// bytes.  Conversion is always binary (1024K = 1M), even where sacct's own
// convention is decimal.  The empty string maps to the empty string so that
// "no value" stays distinguishable from zero usage.
func NormalizeMem(x string) (string, error) {
	x = strings.TrimSpace(x)
	if x == "" {
		return "", nil
	}
	if strings.HasSuffix(x, "n") || strings.HasSuffix(x, "c") {
		x = x[:len(x)-1]
	}
	scale := 1.0
	switch {
	case strings.HasSuffix(x, "K"):
		x = strings.TrimSuffix(x, "K")
		scale = 1 << 10
	case strings.HasSuffix(x, "M"):
		x = strings.TrimSuffix(x, "M")
		scale = 1 << 20
	case strings.HasSuffix(x, "G"):
		x = strings.TrimSuffix(x, "G")
		scale = 1 << 30
	}
	n, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return "", fmt.Errorf("Can't parse memory value %q: %w", x, err)
	}
	mib := math.Round(n * scale / (1 << 20))
	return strconv.FormatInt(int64(mib), 10), nil
}
