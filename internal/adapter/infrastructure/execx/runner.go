// Package execx provides a subprocess runner adapter implementation.
package execx

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jamsub/sunder/internal/port"
)

// RunnerAdapter is an adapter that implements the Runner port using os/exec.
type RunnerAdapter struct{}

// Ensure RunnerAdapter implements the Runner port
var _ port.Runner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new runner adapter.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{}
}

// Run executes a command, discarding stdout. Stderr is folded into the
// returned error so callers get the tool's own message.
func (r *RunnerAdapter) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %s", err.Error(), msg)
		}
		return err
	}
	return nil
}

// Output executes a command and returns its trimmed combined output.
func (r *RunnerAdapter) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(buf.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %s", err.Error(), msg)
		}
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// LookPath reports whether a binary is present on PATH.
func (r *RunnerAdapter) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
