// Package workflow composes the four stages into the single-shot,
// operator-supervised run: collect, mutate, apply, drain. Control flows
// strictly forward with confirmation gates between stages; there is no
// feedback loop.
package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jamsub/sunder/internal/applier"
	"github.com/jamsub/sunder/internal/collector"
	"github.com/jamsub/sunder/internal/drain"
	"github.com/jamsub/sunder/internal/mutator"
	"github.com/jamsub/sunder/internal/pkg/config"
	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/pkg/ui"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// Deps carries every capability the workflow needs. All interaction with
// the host goes through ports so the whole run is testable.
type Deps struct {
	Config     *config.Config
	Backend    port.NetworkBackend
	FileMgr    port.FileManager
	NetMgr     port.NetworkManager
	Runner     port.Runner
	Hypervisor port.Hypervisor
	HostCtl    port.HostController
	Cluster    port.ClusterProbe
	Prompter   port.Prompter
	Out        io.Writer

	// Geteuid is injectable for tests; defaults to os.Geteuid.
	Geteuid func() int

	// SkipDrain leaves guest VMs running after apply.
	SkipDrain bool
}

// Run executes the full reconfiguration workflow. It returns
// types.ErrCancelled for operator-declined gates (exit 0) and any other
// error for fatal conditions (exit 1).
func Run(ctx context.Context, deps Deps) error {
	logger := logging.WithComponent("workflow")

	if err := checkPreconditions(deps); err != nil {
		return err
	}

	if err := acquireLock(deps); err != nil {
		return err
	}
	defer releaseLock(deps)

	state := types.RunState{}

	// Stage 1: collect.
	col := collector.New(deps.NetMgr, deps.Prompter, deps.Out)
	current := col.DetectCurrent()
	target, err := col.PromptNew(current)
	if err != nil {
		return err
	}
	state.Completed = types.StageCollected

	// Stage 2: backup and build artifacts. The interfaces file (or netplan
	// config) is required; hosts, resolver and cluster config are
	// best-effort extras in the snapshot.
	mut := mutator.New(deps.FileMgr, deps.Config.Paths.BackupRoot)
	backup, err := mut.Backup([]mutator.BackupEntry{
		{Path: deps.Backend.ConfigPath(), Required: true},
		{Path: deps.Config.Paths.HostsFile},
		{Path: deps.Config.Paths.ResolvConf},
		{Path: deps.Config.Paths.CorosyncConf},
	})
	if err != nil {
		return err
	}
	state.Completed = types.StageBackedUp
	state.Backup = backup
	fmt.Fprintln(deps.Out, ui.InfoMsg("backup written to %s", backup.Dir))

	netArtifact, err := mut.BuildNetworkArtifact(deps.Backend, target)
	if err != nil {
		return err
	}

	artifacts := []types.ConfigArtifact{netArtifact}
	if current.IP != "" && deps.FileMgr.FileExists(deps.Config.Paths.HostsFile) {
		hostsData, err := deps.FileMgr.ReadFile(deps.Config.Paths.HostsFile)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, mutator.BuildHostsArtifact(
			hostsData, hostName(deps.Config), current.IP, target.IP, deps.Config.Paths.HostsFile))
	}
	state.Completed = types.StageStaged

	// Apply gate. Declining here persists the artifacts without a reload:
	// the change takes effect on the next reboot, live IP unchanged.
	ok, err := deps.Prompter.Confirm("Apply the new configuration now?")
	if err != nil {
		return err
	}
	if !ok {
		for _, artifact := range artifacts {
			if err := deps.FileMgr.WriteFile(artifact.Path, artifact.Content, artifact.Mode); err != nil {
				return err
			}
		}
		fmt.Fprintln(deps.Out, ui.WarnMsg("configuration staged but not applied; it takes effect on the next reboot"))
		return types.ErrCancelled
	}

	// Stage 3: apply.
	app := applier.New(deps.Backend, deps.FileMgr, deps.NetMgr, deps.Runner,
		time.Duration(deps.Config.Apply.SettleDelaySeconds)*time.Second)
	result, err := app.Apply(ctx, artifacts, target, backup)
	if err != nil {
		fmt.Fprintln(deps.Out, ui.ErrorMsg("apply failed, previous configuration restored from %s", backup.Dir))
		return err
	}
	state.Completed = types.StageApplied

	switch result.State {
	case types.Verified:
		fmt.Fprintln(deps.Out, ui.SuccessMsg("network configuration applied, live IP %s", result.LiveIP))
	case types.PendingReboot:
		fmt.Fprintln(deps.Out, ui.WarnMsg("no live-reload mechanism; reboot required for the new address"))
	}
	if result.Warning != "" {
		fmt.Fprintln(deps.Out, ui.WarnMsg("%s", result.Warning))
	}

	if deps.SkipDrain {
		logger.Info("Drain skipped by request")
		return nil
	}

	// Stage 4: drain and terminal host action.
	return DrainAndAct(ctx, deps)
}

// DrainAndAct runs the drain stage followed by the terminal host action
// menu. It is also the whole of the standalone drain command.
func DrainAndAct(ctx context.Context, deps Deps) error {
	ctl := drain.New(deps.Hypervisor,
		time.Duration(deps.Config.Drain.PollIntervalSeconds)*time.Second,
		time.Duration(deps.Config.Drain.TimeoutSeconds)*time.Second)

	report, err := ctl.DrainAll(ctx)
	if err != nil {
		return err
	}
	printDrainReport(deps.Out, report)

	action, err := drain.SelectHostAction(deps.Prompter)
	if err != nil {
		return err
	}

	switch action {
	case types.HostShutdown:
		return deps.HostCtl.Shutdown(ctx)
	case types.HostReboot:
		return deps.HostCtl.Reboot(ctx)
	default:
		fmt.Fprintln(deps.Out, ui.InfoMsg("leaving host running"))
		return nil
	}
}

func checkPreconditions(deps Deps) error {
	geteuid := deps.Geteuid
	if geteuid == nil {
		geteuid = os.Geteuid
	}
	if geteuid() != 0 {
		return &types.PreconditionError{Reason: "must run as root"}
	}

	if deps.Cluster != nil && deps.Cluster.Clustered() {
		fmt.Fprintln(deps.Out, ui.WarnMsg("this host is part of a cluster; changing its IP requires cluster-wide coordination"))
		return &types.PreconditionError{Reason: "host is clustered, refusing to reconfigure"}
	}
	return nil
}

// acquireLock guards against two operators running the tool at once.
func acquireLock(deps Deps) error {
	lock := deps.Config.Paths.LockFile
	if lock == "" {
		return nil
	}
	if deps.FileMgr.FileExists(lock) {
		return &types.PreconditionError{Reason: "another run appears to be in progress (lock file " + lock + " exists)"}
	}
	return deps.FileMgr.WriteFile(lock, []byte(strconv.Itoa(os.Getpid())+"\n"), 0644)
}

func releaseLock(deps Deps) {
	if deps.Config.Paths.LockFile == "" {
		return
	}
	if err := deps.FileMgr.Remove(deps.Config.Paths.LockFile); err != nil {
		logging.WithComponent("workflow").WithError(err).Warn("Failed to remove lock file")
	}
}

func hostName(cfg *config.Config) string {
	if cfg.Hostname != "" {
		return cfg.Hostname
	}
	name, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return name
}

func printDrainReport(out io.Writer, report types.DrainReport) {
	if report.Skipped {
		fmt.Fprintln(out, ui.InfoMsg("no hypervisor control tool found, drain skipped"))
		return
	}
	if len(report.Results) == 0 {
		fmt.Fprintln(out, ui.InfoMsg("no running VMs"))
		return
	}
	for _, r := range report.Results {
		switch r.Outcome {
		case types.GracefulSuccess:
			fmt.Fprintln(out, ui.SuccessMsg("VM %d (%s) shut down gracefully", r.VM.ID, r.VM.Name))
		case types.ForcedStop:
			fmt.Fprintln(out, ui.WarnMsg("VM %d (%s) timed out and was force-stopped", r.VM.ID, r.VM.Name))
		case types.ForcedStopAfterRequestFailure:
			fmt.Fprintln(out, ui.WarnMsg("VM %d (%s) rejected shutdown and was force-stopped", r.VM.ID, r.VM.Name))
		}
	}
}
