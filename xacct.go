// `xacct` -- run Slurm sacct and print a friendly tabular summary.
//
// Batch steps are folded into their jobs, MaxRSS and ReqMem are normalized
// to MiB, a derived StateSince column reports the time of the last state
// change, and timestamps are simplified relative to today.  Arguments after
// `--` are passed to sacct unchanged.
//
// Examples:
//
//	xacct
//	xacct -d 1                 # jobs from yesterday onwards
//	xacct -- -S 2016-12-01     # jobs starting from the given date
//	xacct -tsv | sort -t$'\t' -k4,4n

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"xacct/config"
	"xacct/record"
	"xacct/sacct"
	"xacct/status"
	"xacct/table"
)

const xacctVersion = "0.4.0"

var (
	daysStr     string
	sortKeys    []string
	fromIDStr   string
	formatList  []string
	tsv         bool
	colorMode   string
	noColor     bool
	isoDate     bool
	inputFile   string
	verbose     bool
	showVersion bool
)

func init() {
	flag.StringVar(&daysStr, "days", "", "Show jobs from this many `days` ago (fractions allowed) [default: 0]")
	flag.StringVar(&daysStr, "d", "", "Short for -days `days`")
	flag.Var(NewRepeatableString(&sortKeys), "sort",
		"Sort by these `fields`, comma-separated or repeated; suffix '-' sorts a field\n"+
			"in reverse, \"none\" skips sorting [default: StateSince]")
	flag.Var(NewRepeatableString(&sortKeys), "s", "Short for -sort `fields`")
	flag.StringVar(&fromIDStr, "from-id", "", "Show jobs whose `ID` is equal or greater than this [default: all]")
	flag.StringVar(&fromIDStr, "id", "", "Short for -from-id `ID`")
	flag.Var(NewRepeatableString(&formatList), "format",
		"Columns to print, comma-separated or repeated, case insensitive; see -format\n"+
			"and -helpformat in sacct.  The token FMT expands to the default columns.\n"+
			"StateSince is computed by xacct and reports the time since the job has been\n"+
			"in the given state [default: "+strings.Join(sacct.DefaultFields, ",")+"]")
	flag.Var(NewRepeatableString(&formatList), "f", "Short for -format `columns`")
	flag.BoolVar(&tsv, "tsv", false,
		"Print columns separated by TAB (better for further processing) instead of\n"+
			"tabulating them (better for eyeballing).  Implies -no-color")
	flag.StringVar(&colorMode, "color", "",
		"Colorize job states: `mode` is auto, always, or never [default: auto]")
	flag.BoolVar(&noColor, "no-color", false, "Same as -color never")
	flag.BoolVar(&noColor, "nc", false, "Same as -color never")
	flag.BoolVar(&isoDate, "iso-date", false, "Leave date-time strings as produced by sacct")
	flag.BoolVar(&isoDate, "dt", false, "Short for -iso-date")
	flag.StringVar(&inputFile, "input-file", "", "For testing: read sacct output from `file` instead of running sacct")
	flag.BoolVar(&verbose, "verbose", false, "Print the sacct command and other diagnostics to stderr")
	flag.BoolVar(&verbose, "V", false, "Short for -verbose")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&showVersion, "v", false, "Short for -version")
}

func main() {
	// Callers like `xacct | head` close our output early; the resulting
	// EPIPE must be a clean exit, not a SIGPIPE death.
	signal.Ignore(syscall.SIGPIPE)

	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("xacct version %s\n", xacctVersion)
		return
	}
	if verbose {
		status.Default().SetLevel(status.LogLevelInfo)
	}

	if err := xacct(flag.Args()); err != nil {
		if table.IsBrokenPipe(err) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [options] [-- sacct args]\n\n", os.Args[0])
	fmt.Fprintln(out, "   Run sacct and print a friendly tabular output.")
	fmt.Fprintln(out, "   Values in MaxRSS and ReqMem are in MiB units.")
	fmt.Fprintln(out, "\nOptions:")
	flag.PrintDefaults()
}

func xacct(sacctArgs []string) error {
	config.ApplyDefault(&daysStr, config.DaysField)
	config.ApplyDefault(&colorMode, config.ColorField)
	if len(sortKeys) == 0 {
		var s string
		if config.ApplyDefault(&s, config.SortField) {
			sortKeys = strings.Split(s, ",")
		} else {
			sortKeys = []string{"StateSince"}
		}
	}
	requested := formatList
	if len(requested) == 0 {
		var s string
		if config.ApplyDefault(&s, config.FormatField) {
			requested = strings.Split(s, ",")
		} else {
			requested = []string{sacct.FmtToken}
		}
	}

	var startTime string
	if daysStr != "" {
		days, err := strconv.ParseFloat(daysStr, 64)
		if err != nil {
			return fmt.Errorf("Bad -days value %q: %w", daysStr, err)
		}
		if days > 0 {
			d := time.Now().Add(-time.Duration(days * 24 * float64(time.Hour)))
			startTime = d.Format("2006-01-02")
		}
	}

	var minID *int64
	if fromIDStr != "" {
		n, err := strconv.ParseInt(fromIDStr, 10, 64)
		if err != nil {
			return fmt.Errorf("Bad -from-id value %q: %w", fromIDStr, err)
		}
		minID = &n
	}

	fields := sacct.ExpandFormat(requested)
	display := sacct.DisplayColumns(fields)
	query, wantStateSince := sacct.QueryFields(fields)

	var raw string
	if inputFile != "" {
		bytes, err := os.ReadFile(inputFile)
		if err != nil {
			return err
		}
		raw = string(bytes)
	} else {
		var err error
		raw, err = sacct.Run(query, startTime, sacctArgs, verbose)
		if err != nil {
			return err
		}
	}

	records, err := record.Parse(raw, display, wantStateSince)
	if err != nil {
		return err
	}
	merged, err := record.MergeBatch(records, minID)
	if err != nil {
		return err
	}
	if len(sortKeys) != 1 || sortKeys[0] != "none" {
		record.SortBy(merged, sortKeys)
	}

	if !tsv && !isoDate {
		now := time.Now()
		for _, column := range []string{"StateSince", "Submit", "Start", "End"} {
			table.SimplifyDateTimes(merged, column, now)
		}
	}

	color, err := useColor()
	if err != nil {
		return err
	}
	return table.Render(os.Stdout, display, merged, table.Options{Tsv: tsv, Color: color})
}

func useColor() (bool, error) {
	if tsv || noColor {
		return false, nil
	}
	switch colorMode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("Bad -color value %q: want auto, always, or never", colorMode)
	}
}
