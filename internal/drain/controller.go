// Package drain implements the workload drain stage: stop all running
// guest VMs gracefully before a disruptive host operation, escalating to a
// forced stop when a guest does not cooperate.
package drain

import (
	"context"
	"fmt"
	"time"

	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// Controller drains guest VMs through the hypervisor port.
//
// Draining is intentionally serial: it bounds hypervisor load and gives
// deterministic per-VM log ordering, at the cost of wall-clock time
// scaling with VM count in the worst case. Tune PollInterval and Timeout
// for large fleets.
type Controller struct {
	hv port.Hypervisor

	// PollInterval is how often a VM's status is re-queried.
	PollInterval time.Duration
	// Timeout is the per-VM graceful shutdown budget before escalation.
	Timeout time.Duration

	sleep func(time.Duration)
}

// New creates a drain controller.
func New(hv port.Hypervisor, pollInterval, timeout time.Duration) *Controller {
	return &Controller{
		hv:           hv,
		PollInterval: pollInterval,
		Timeout:      timeout,
		sleep:        time.Sleep,
	}
}

// DrainAll enumerates running VMs and drains them one at a time. A host
// without the hypervisor control tool yields a Skipped report, which is a
// no-op success, not an error.
func (c *Controller) DrainAll(ctx context.Context) (types.DrainReport, error) {
	logger := logging.WithComponent("drain")

	if !c.hv.Available() {
		logger.Info("Hypervisor control tool not available, skipping drain")
		return types.DrainReport{Skipped: true}, nil
	}

	vms, err := c.hv.ListRunning(ctx)
	if err != nil {
		return types.DrainReport{}, fmt.Errorf("listing running VMs: %w", err)
	}
	if len(vms) == 0 {
		logger.Info("No running VMs")
		return types.DrainReport{}, nil
	}

	report := types.DrainReport{}
	for _, vm := range vms {
		report.Results = append(report.Results, c.drainOne(ctx, vm))
	}
	return report, nil
}

// drainOne requests a graceful shutdown, polls until stopped or timeout,
// and escalates to exactly one forced stop when the guest does not stop in
// time. A failed shutdown request skips the wait entirely.
func (c *Controller) drainOne(ctx context.Context, vm types.VMHandle) types.DrainResult {
	logger := logging.WithComponent("drain").WithField("vm", vm.Name).WithField("id", vm.ID)

	logger.Info("Requesting graceful shutdown")
	if err := c.hv.Shutdown(ctx, vm.ID); err != nil {
		logger.WithError(err).Warn("Shutdown request failed, forcing stop")
		c.forceStop(ctx, vm)
		return types.DrainResult{VM: vm, Outcome: types.ForcedStopAfterRequestFailure}
	}

	for waited := time.Duration(0); waited < c.Timeout; waited += c.PollInterval {
		c.sleep(c.PollInterval)

		status, err := c.hv.Status(ctx, vm.ID)
		if err != nil {
			logger.WithError(err).Warn("Status query failed")
			continue
		}
		if status == types.VMStatusStopped {
			logger.Info("VM stopped gracefully")
			return types.DrainResult{VM: vm, Outcome: types.GracefulSuccess}
		}
		logger.WithField("status", status).WithField("waited", waited+c.PollInterval).Debug("Still waiting")
	}

	logger.Warn("Graceful shutdown timed out, forcing stop")
	c.forceStop(ctx, vm)
	return types.DrainResult{VM: vm, Outcome: types.ForcedStop}
}

func (c *Controller) forceStop(ctx context.Context, vm types.VMHandle) {
	if err := c.hv.Stop(ctx, vm.ID); err != nil {
		logging.WithComponent("drain").WithError(err).WithField("vm", vm.Name).Error("Forced stop failed")
	}
}

// SelectHostAction asks the operator which terminal action to take after
// drain. An invalid selection is a fatal input error: exactly one action
// runs and nothing is assumed as a default.
func SelectHostAction(prompter port.Prompter) (types.HostAction, error) {
	choice, err := prompter.Prompt("Host action: 1) shutdown  2) reboot  3) exit without action", "3")
	if err != nil {
		return types.HostNone, err
	}

	switch choice {
	case "1":
		return types.HostShutdown, nil
	case "2":
		return types.HostReboot, nil
	case "3":
		return types.HostNone, nil
	default:
		return types.HostNone, fmt.Errorf("invalid selection %q", choice)
	}
}
