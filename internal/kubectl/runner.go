package kubectl

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"kubechat/pkg/logging"
)

const logSubsystem = "ToolServer"

// DefaultTimeout bounds a single kubectl invocation unless configured
// otherwise.
const DefaultTimeout = 30 * time.Second

// Result captures everything a finished kubectl invocation produced.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error // spawn-level failure; nil whenever the process actually ran
}

// Success reports whether the command ran and exited zero.
func (r Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes kubectl with a prepared argument list.
type Runner interface {
	Run(ctx context.Context, args ...string) Result
}

// Options configure the subprocess runner.
type Options struct {
	Path    string        // kubectl binary, defaults to "kubectl" on PATH
	Context string        // optional kubeconfig context, passed as --context
	Timeout time.Duration // per-invocation deadline, defaults to DefaultTimeout
}

type execRunner struct {
	path        string
	kubeContext string
	timeout     time.Duration
}

// NewRunner returns a Runner that shells out to the kubectl binary.
func NewRunner(opts Options) Runner {
	path := opts.Path
	if path == "" {
		path = "kubectl"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &execRunner{
		path:        path,
		kubeContext: opts.Context,
		timeout:     timeout,
	}
}

func (r *execRunner) Run(ctx context.Context, args ...string) Result {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fullArgs := args
	if r.kubeContext != "" {
		fullArgs = append([]string{"--context", r.kubeContext}, args...)
	}

	logging.Debug(logSubsystem, "Executing: %s %s", r.path, strings.Join(fullArgs, " "))

	cmd := exec.CommandContext(runCtx, r.path, fullArgs...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	runErr := cmd.Run()

	result := Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	switch {
	case runErr == nil:
		// Ran and exited zero.
	case runCtx.Err() == context.DeadlineExceeded:
		result.ExitCode = -1
		result.Err = &CommandExecutionError{Command: r.path, Timeout: r.timeout, cause: runErr}
	case errors.Is(runErr, exec.ErrNotFound):
		result.ExitCode = -1
		result.Err = &CommandExecutionError{Command: r.path, cause: runErr}
	default:
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Err = &CommandExecutionError{Command: r.path, cause: runErr}
		}
	}

	return result
}
