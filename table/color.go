package table

// Escape codes per https://misc.flogisoft.com/bash/tip_colors_and_formatting

const (
	ansiRed        = "\x1b[31m"
	ansiGreen      = "\x1b[32m"
	ansiBrightBlue = "\x1b[94m"
	ansiReset      = "\x1b[0m"
)

// Colorize wraps well-known job states in color escapes; everything else
// passes through unchanged.  The input slice is not modified.
func Colorize(values []string) []string {
	colored := make([]string, len(values))
	for i, v := range values {
		switch v {
		case "FAILED":
			v = ansiRed + v + ansiReset
		case "COMPLETED":
			v = ansiGreen + v + ansiReset
		case "RUNNING":
			v = ansiBrightBlue + v + ansiReset
		}
		colored[i] = v
	}
	return colored
}
