package kubectl

import (
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// CommandExecutionError reports that kubectl could not be executed at all:
// the binary is missing, the process failed to spawn, or it exceeded the
// configured timeout. Ordinary non-zero exits are not execution errors; they
// come back as a Result with the exit code and captured streams.
type CommandExecutionError struct {
	Command string        // binary that was invoked
	Timeout time.Duration // non-zero when the invocation hit the deadline
	cause   error
}

func (e *CommandExecutionError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("command timed out after %s", e.Timeout)
	}
	if errors.Is(e.cause, exec.ErrNotFound) {
		return fmt.Sprintf("%s not found on PATH", e.Command)
	}
	return fmt.Sprintf("failed to execute %s: %v", e.Command, e.cause)
}

func (e *CommandExecutionError) Unwrap() error { return e.cause }
