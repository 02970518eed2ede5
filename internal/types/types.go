// Package types defines common types used across the application.
package types

import "time"

// NetworkConfig holds the target addressing for the host. It is constructed
// by the collector, confirmed by the operator, and from then on passed
// read-only through the mutator and applier.
type NetworkConfig struct {
	Interface string   `yaml:"interface"` // physical interface (e.g. "eno1")
	Bridge    string   `yaml:"bridge"`    // bridge carrying the address, if any (e.g. "vmbr0")
	IP        string   `yaml:"ip"`        // IPv4 address in dotted decimal notation
	Netmask   string   `yaml:"netmask"`   // subnet mask in dotted decimal notation
	Gateway   string   `yaml:"gateway"`   // default gateway IP address
	DNS       []string `yaml:"dns"`       // optional nameservers
}

// AddressedInterface returns the interface the address lives on: the bridge
// when one is configured, otherwise the physical interface.
func (c NetworkConfig) AddressedInterface() string {
	if c.Bridge != "" {
		return c.Bridge
	}
	return c.Interface
}

// Backup is a timestamped snapshot of the configuration files taken before
// any mutation. Files maps original path to backup copy. Backups are never
// garbage-collected by the tool.
type Backup struct {
	Dir       string
	Timestamp time.Time
	Files     map[string]string
}

// ConfigArtifact is a rendered configuration file staged for apply. It is
// produced by the mutator and only written to disk by the applier.
type ConfigArtifact struct {
	Path    string
	Content []byte
	Mode    int
}

// VMStatus values as reported by the hypervisor. The hypervisor is
// authoritative; these are observations, not owned state.
const (
	VMStatusRunning = "running"
	VMStatusStopped = "stopped"
)

// VMHandle identifies a guest VM observed on the hypervisor.
type VMHandle struct {
	ID     int
	Name   string
	Status string
}

// DrainOutcome is the terminal state a VM reached during drain.
type DrainOutcome string

const (
	// GracefulSuccess: the VM reached stopped within the timeout.
	GracefulSuccess DrainOutcome = "graceful"
	// ForcedStop: the VM did not stop in time and was force-stopped.
	ForcedStop DrainOutcome = "forced"
	// ForcedStopAfterRequestFailure: the shutdown request itself failed and
	// the VM was force-stopped without waiting.
	ForcedStopAfterRequestFailure DrainOutcome = "forced-after-request-failure"
)

// DrainResult records the terminal state of one VM.
type DrainResult struct {
	VM      VMHandle
	Outcome DrainOutcome
}

// DrainReport summarizes a drain run. Skipped is set when the hypervisor
// control tool was not available, which is a no-op success.
type DrainReport struct {
	Skipped bool
	Results []DrainResult
}

// ApplyState is the outcome of the applier state machine.
type ApplyState string

const (
	// Verified: the artifact was applied, networking reloaded, and the live
	// IP matches the requested one.
	Verified ApplyState = "verified"
	// RolledBack: the reload failed and the backup was restored.
	RolledBack ApplyState = "rolled-back"
	// PendingReboot: the artifact is persisted but no live-reload mechanism
	// exists; a reboot is required. Not an error.
	PendingReboot ApplyState = "pending-reboot"
)

// ApplyResult is returned by the applier.
type ApplyResult struct {
	State   ApplyState
	LiveIP  string // IP observed on the interface after reload, if any
	Warning string // verification mismatch or advisory check notes
}

// HostAction is the terminal action offered after drain.
type HostAction string

const (
	HostShutdown HostAction = "shutdown"
	HostReboot   HostAction = "reboot"
	HostNone     HostAction = "none"
)

// Stage identifies a workflow stage for RunState tracking.
type Stage int

const (
	StageNone Stage = iota
	StageCollected
	StageBackedUp
	StageStaged
	StageApplied
	StageDrained
)

// RunState is the transient in-memory record of workflow progress. It is
// never persisted; a killed run leaves the system in whatever state the
// last completed stage produced, with the on-disk backup as the recovery
// path.
type RunState struct {
	Completed Stage
	Backup    *Backup
}
