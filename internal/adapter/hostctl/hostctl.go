// Package hostctl provides the host power control adapter.
package hostctl

import (
	"context"
	"fmt"

	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/port"
)

// ControllerAdapter is an adapter that implements the HostController port
// over the system shutdown command.
type ControllerAdapter struct {
	runner port.Runner
}

// Ensure ControllerAdapter implements the HostController port
var _ port.HostController = (*ControllerAdapter)(nil)

// NewControllerAdapter creates a new host controller adapter.
func NewControllerAdapter(runner port.Runner) *ControllerAdapter {
	return &ControllerAdapter{runner: runner}
}

// Shutdown powers the host off immediately. Fire-and-forget: the process
// may be killed before the command's exit status is observed.
func (c *ControllerAdapter) Shutdown(ctx context.Context) error {
	logging.WithComponent("hostctl").Warn("Shutting down host now")
	if err := c.runner.Run("shutdown", "-h", "now"); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// Reboot restarts the host immediately.
func (c *ControllerAdapter) Reboot(ctx context.Context) error {
	logging.WithComponent("hostctl").Warn("Rebooting host now")
	if err := c.runner.Run("shutdown", "-r", "now"); err != nil {
		return fmt.Errorf("reboot failed: %w", err)
	}
	return nil
}
