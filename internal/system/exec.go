package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Output holds the captured streams of a finished process.
type Output struct {
	Stdout string
	Stderr string
}

// ExitError reports a process that ran to completion with a non-zero code.
// The raw stderr is carried along so callers can refine the message.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.Code, msg)
}

// RunFunc is the execution contract used across the codebase so tests can
// substitute a recorder for real process spawns.
type RunFunc func(ctx context.Context, name string, args []string, env map[string]string) (Output, error)

// Run executes a command and captures stdout/stderr separately.
// Env overrides are merged over the current environment; stdin is not
// inherited so the child can never block on interactive input. A non-zero
// exit is reported as *ExitError; spawn failures are returned as-is.
func Run(ctx context.Context, name string, args []string, env map[string]string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = mergeEnv(env)
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if ctx.Err() != nil {
		return out, ctx.Err()
	}
	if err != nil {
		var xe *exec.ExitError
		if errors.As(err, &xe) {
			return out, &ExitError{Command: name, Code: xe.ExitCode(), Stderr: out.Stderr}
		}
		return out, err
	}
	return out, nil
}

// RunSudo executes a command under sudo with the same capture semantics as
// Run. It never prompts for a password itself; whether elevation succeeds is
// up to the host's sudo configuration.
func RunSudo(ctx context.Context, name string, args []string, env map[string]string) (Output, error) {
	return Run(ctx, "sudo", append([]string{name}, args...), env)
}

func mergeEnv(overrides map[string]string) []string {
	env := append(os.Environ(), "NO_COLOR=1")
	for k, v := range overrides {
		env = append(env, k+"="+v)
	}
	return env
}
