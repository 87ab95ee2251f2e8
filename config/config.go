// Defaults from the user's ~/.xacct file, ini format.  Anything given on the
// command line wins over the file.

package config

import (
	"errors"
	"os"
	"path"

	ini "github.com/lars-t-hansen/ini"

	"xacct/status"
)

// MT: Constant after initialization
var (
	p        = ini.NewParser()
	store    *ini.Store
	defaults = p.AddSection("xacct")

	FormatField = defaults.AddString("format")
	SortField   = defaults.AddString("sort")
	DaysField   = defaults.AddString("days")
	ColorField  = defaults.AddString("color")
)

func init() {
	home := os.Getenv("HOME")
	if home == "" {
		return
	}
	fn := path.Join(path.Clean(home), ".xacct")
	input, err := os.Open(fn)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			status.Warningf("Can't open %s: %s", fn, err.Error())
		}
		return
	}
	defer input.Close()
	store, err = p.Parse(input)
	if err != nil {
		// A bad config file should not stop the query.
		status.Warningf("Ignoring %s: %s", fn, err.Error())
		store = nil
	}
}

func HasDefault(f *ini.Field) bool {
	return store != nil && f.Present(store)
}

// ApplyDefault fills *sp from the config file if the user did not set it.
func ApplyDefault(sp *string, f *ini.Field) bool {
	if *sp != "" || store == nil || !f.Present(store) {
		return false
	}
	*sp = os.ExpandEnv(f.StringVal(store))
	return true
}
