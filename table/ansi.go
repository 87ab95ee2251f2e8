// The table package renders merged job records as an aligned, optionally
// colorized table or as a TSV stream.

package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const esc = '\x1b'

// StripEscapes removes ANSI color sequences (ESC '[' ... 'm') from s.  This
// is a plain scan, not a regexp, so adversarial input can't blow it up.  An
// unterminated sequence is left in place.
func StripEscapes(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == esc && i+1 < len(s) && s[i+1] == '[' {
			j := strings.IndexByte(s[i+2:], 'm')
			if j >= 0 {
				i += 2 + j
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// PrintableWidth is the number of terminal cells s occupies once color
// escapes are disregarded.
func PrintableWidth(s string) int {
	return runewidth.StringWidth(StripEscapes(s))
}
