// Package applier implements the apply stage: swap staged artifacts in,
// reload networking, verify, and roll back from backup on reload failure.
//
// State machine: Staged -> Applying -> {Verified | RolledBack | PendingReboot}.
package applier

import (
	"context"
	"fmt"
	"time"

	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// Applier applies staged configuration artifacts.
type Applier struct {
	backend port.NetworkBackend
	fileMgr port.FileManager
	netMgr  port.NetworkManager
	runner  port.Runner

	settleDelay time.Duration
	sleep       func(time.Duration)
}

// New creates an applier. settleDelay is how long to wait after a reload
// before re-reading the live IP.
func New(backend port.NetworkBackend, fileMgr port.FileManager, netMgr port.NetworkManager, runner port.Runner, settleDelay time.Duration) *Applier {
	return &Applier{
		backend:     backend,
		fileMgr:     fileMgr,
		netMgr:      netMgr,
		runner:      runner,
		settleDelay: settleDelay,
		sleep:       time.Sleep,
	}
}

// Apply writes the staged artifacts over the live configuration and, when
// the backend supports it, reloads networking and verifies the result.
//
// Only a reload failure rolls back and fails the run; a verification
// mismatch is reported as a warning on a Verified result. Without a
// live-reload mechanism the artifacts are persisted and PendingReboot is
// returned, which is not an error.
func (a *Applier) Apply(ctx context.Context, artifacts []types.ConfigArtifact, target types.NetworkConfig, backup *types.Backup) (types.ApplyResult, error) {
	logger := logging.WithComponent("applier")

	for _, artifact := range artifacts {
		if err := a.fileMgr.WriteFile(artifact.Path, artifact.Content, artifact.Mode); err != nil {
			// Nothing reloaded yet; restore to keep the files consistent.
			a.restore(ctx, backup, false)
			return types.ApplyResult{State: types.RolledBack}, &types.ApplyError{Reason: "writing " + artifact.Path, Err: err}
		}
		logger.WithField("path", artifact.Path).Info("Installed configuration")
	}

	if !a.backend.SupportsReload() {
		logger.WithField("backend", a.backend.Name()).Info("No live-reload mechanism, reboot required")
		return types.ApplyResult{State: types.PendingReboot}, nil
	}

	logger.WithField("backend", a.backend.Name()).Info("Reloading network configuration")
	if err := a.backend.Reload(ctx); err != nil {
		logger.WithError(err).Error("Reload failed, restoring backup")
		a.restore(ctx, backup, true)
		return types.ApplyResult{State: types.RolledBack}, &types.ApplyError{Reason: "network reload", Err: err}
	}

	a.sleep(a.settleDelay)

	result := types.ApplyResult{State: types.Verified}
	result.LiveIP = a.liveIP(target.AddressedInterface())
	if result.LiveIP != target.IP {
		result.Warning = fmt.Sprintf("live IP %q does not match requested %q", result.LiveIP, target.IP)
		logger.Warn(result.Warning)
	}

	if note := a.probeGateway(target.Gateway); note != "" {
		// Advisory only; never affects the result state.
		if result.Warning != "" {
			result.Warning += "; "
		}
		result.Warning += note
	}

	return result, nil
}

// restore copies every backed-up file over its original and optionally
// re-triggers a reload. Failures here are logged, not returned; the backup
// stays on disk for manual recovery.
func (a *Applier) restore(ctx context.Context, backup *types.Backup, reload bool) {
	logger := logging.WithComponent("applier")

	if backup == nil {
		logger.Error("No backup available to restore")
		return
	}
	for orig, saved := range backup.Files {
		if err := a.fileMgr.CopyFile(saved, orig); err != nil {
			logger.WithError(err).WithField("path", orig).Error("Restore failed")
		} else {
			logger.WithField("path", orig).Info("Restored from backup")
		}
	}
	if reload {
		if err := a.backend.Reload(ctx); err != nil {
			logger.WithError(err).Error("Reload after restore failed")
		}
	}
}

// liveIP reads the first IPv4 address on the interface, or "".
func (a *Applier) liveIP(iface string) string {
	link, err := a.netMgr.GetLinkByName(iface)
	if err != nil {
		return ""
	}
	addrs, err := a.netMgr.ListAddresses(link)
	if err != nil || len(addrs) == 0 {
		return ""
	}
	if ip4 := addrs[0].IPNet.IP.To4(); ip4 != nil {
		return ip4.String()
	}
	return ""
}

// probeGateway pings the gateway once. Returns an advisory note on
// failure, "" on success or when no gateway is set.
func (a *Applier) probeGateway(gateway string) string {
	if gateway == "" {
		return ""
	}
	if err := a.runner.Run("ping", "-c", "1", "-W", "2", gateway); err != nil {
		return fmt.Sprintf("gateway %s not reachable yet: %v", gateway, err)
	}
	return ""
}
