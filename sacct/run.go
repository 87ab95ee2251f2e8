package sacct

import (
	"fmt"
	"strings"

	"xacct/process"
	"xacct/status"
)

// CommandError reports a sacct invocation that exited non-zero.  Its message
// is the captured combined output followed by the exit code, which is what
// the user should see.
type CommandError struct {
	Output string
	Code   int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s\nExit code %d", strings.TrimSpace(e.Output), e.Code)
}

// BuildCommand assembles the sacct argument list: parsable pipe-delimited
// output with the given format fields, an optional --starttime filter, and
// any passthrough arguments.
func BuildCommand(queryFields []string, startTime string, extraArgs []string) []string {
	args := []string{"--parsable2", "--format=" + strings.Join(queryFields, ",")}
	if startTime != "" {
		args = append(args, "--starttime", startTime)
	}
	return append(args, extraArgs...)
}

// Run invokes sacct and returns its raw output.  stdout and stderr are
// captured together; a non-zero exit yields a *CommandError carrying the
// combined output.
func Run(queryFields []string, startTime string, extraArgs []string, verbose bool) (string, error) {
	args := BuildCommand(queryFields, startTime, extraArgs)
	if verbose {
		status.Infof("sacct %s", strings.Join(args, " "))
	}
	output, code, err := process.RunCombined("sacct", args)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", &CommandError{Output: output, Code: code}
	}
	return output, nil
}
