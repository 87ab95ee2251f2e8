// Abstractions for running subprocesses and capturing their output.

package process

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RunCombined runs the program with the arguments and captures stdout and
// stderr interleaved.  A non-zero exit is not an error here: the combined
// output and the exit code are returned and the caller decides.  An error is
// returned only when the program could not be run at all.
func RunCombined(programPath string, arguments []string) (output string, code int, err error) {
	cmd := exec.Command(programPath, arguments...)
	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out
	err = cmd.Run()
	output = out.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, exitErr.ExitCode(), nil
		}
		return "", 0, errors.Join(fmt.Errorf("While running %s", programPath), err)
	}
	return output, 0, nil
}
