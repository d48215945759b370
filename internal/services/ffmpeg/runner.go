package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes an external tool to completion and reports its outcome.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) error
}

// CommandError describes a failed external tool invocation.
type CommandError struct {
	Binary string
	Args   []string
	Output string
	Err    error
}

// Error renders the failing command followed by captured diagnostics.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %s failed: %v", e.Command(), e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

// Unwrap exposes the underlying exec error for errors.Is/As chains.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Command returns the invocation as a shell-readable string, quoting
// arguments that contain whitespace.
func (e *CommandError) Command() string {
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, e.Binary)
	for _, arg := range e.Args {
		if strings.ContainsAny(arg, " \t") {
			arg = "'" + arg + "'"
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// IsNotFound reports whether err means the tool binary could not be located.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

type execRunner struct{}

// NewRunner returns the exec-backed Runner used outside tests.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	var diagnostics bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &diagnostics

	if err := cmd.Run(); err != nil {
		return &CommandError{
			Binary: binary,
			Args:   append([]string(nil), args...),
			Output: strings.TrimSpace(diagnostics.String()),
			Err:    err,
		}
	}
	return nil
}
