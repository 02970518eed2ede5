// Package hypervisor provides the Proxmox qm CLI adapter.
package hypervisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// QMAdapter is an adapter that implements the Hypervisor port over the
// Proxmox qm command line tool. qm is treated as a black box; any tool
// with a compatible list/shutdown/status/stop surface is substitutable.
type QMAdapter struct {
	runner port.Runner
}

// Ensure QMAdapter implements the Hypervisor port
var _ port.Hypervisor = (*QMAdapter)(nil)

// NewQMAdapter creates a new qm hypervisor adapter.
func NewQMAdapter(runner port.Runner) *QMAdapter {
	return &QMAdapter{runner: runner}
}

// Available reports whether qm is present on this host.
func (q *QMAdapter) Available() bool {
	return q.runner.LookPath("qm")
}

// ListRunning enumerates VMs in the running state from `qm list` output.
// The expected format is a header line followed by
// "VMID NAME STATUS ..." columns.
func (q *QMAdapter) ListRunning(ctx context.Context) ([]types.VMHandle, error) {
	out, err := q.runner.Output("qm", "list")
	if err != nil {
		return nil, fmt.Errorf("qm list failed: %w", err)
	}
	return parseVMList(out), nil
}

func parseVMList(out string) []types.VMHandle {
	logger := logging.WithComponent("hypervisor")

	var running []types.VMHandle
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			// Header line or malformed row.
			continue
		}
		vm := types.VMHandle{ID: id, Name: fields[1], Status: fields[2]}
		if vm.Status == types.VMStatusRunning {
			running = append(running, vm)
		} else {
			logger.WithField("vm", vm.Name).WithField("status", vm.Status).Debug("Skipping non-running VM")
		}
	}
	return running
}

// Shutdown requests a graceful guest shutdown.
func (q *QMAdapter) Shutdown(ctx context.Context, id int) error {
	if err := q.runner.Run("qm", "shutdown", strconv.Itoa(id)); err != nil {
		return fmt.Errorf("qm shutdown %d failed: %w", id, err)
	}
	return nil
}

// Status re-queries the status of a VM. `qm status` prints
// "status: running"; the value after the colon is returned.
func (q *QMAdapter) Status(ctx context.Context, id int) (string, error) {
	out, err := q.runner.Output("qm", "status", strconv.Itoa(id))
	if err != nil {
		return "", fmt.Errorf("qm status %d failed: %w", id, err)
	}
	if _, value, ok := strings.Cut(out, ":"); ok {
		return strings.TrimSpace(value), nil
	}
	return strings.TrimSpace(out), nil
}

// Stop force-stops a VM.
func (q *QMAdapter) Stop(ctx context.Context, id int) error {
	if err := q.runner.Run("qm", "stop", strconv.Itoa(id)); err != nil {
		return fmt.Errorf("qm stop %d failed: %w", id, err)
	}
	return nil
}
