// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"github.com/jamsub/sunder/internal/types"
)

// NetworkBackend is the primary port for one host network configuration
// mechanism (legacy ifupdown, ifupdown2, netplan). Implementations build
// configuration artifacts and apply them; they never prompt or decide.
type NetworkBackend interface {
	// Name returns a short identifier for log output ("ifupdown",
	// "ifupdown2", "netplan").
	Name() string

	// ConfigPath returns the live configuration file this backend owns.
	ConfigPath() string

	// BuildArtifact renders the new configuration from the confirmed
	// NetworkConfig and the existing file contents. It never touches live
	// system state; callers stage the returned bytes.
	BuildArtifact(cfg types.NetworkConfig, existing []byte) ([]byte, error)

	// SupportsReload reports whether the backend can apply configuration
	// without a reboot.
	SupportsReload() bool

	// Reload applies the live configuration. Only meaningful when
	// SupportsReload is true.
	Reload(ctx context.Context) error
}

// Hypervisor abstracts the guest VM control tool (Proxmox qm). Any tool
// satisfying this contract is substitutable.
type Hypervisor interface {
	// Available reports whether the control tool is present on this host.
	Available() bool

	// ListRunning enumerates VMs currently in the running state.
	ListRunning(ctx context.Context) ([]types.VMHandle, error)

	// Shutdown requests a graceful guest shutdown.
	Shutdown(ctx context.Context, id int) error

	// Status re-queries the current status of a VM.
	Status(ctx context.Context, id int) (string, error)

	// Stop force-stops a VM.
	Stop(ctx context.Context, id int) error
}

// HostController performs host-level power actions. Fire-and-forget: no
// return value is expected from the underlying commands once issued.
type HostController interface {
	Shutdown(ctx context.Context) error
	Reboot(ctx context.Context) error
}

// ClusterProbe answers the single question gating the cluster warning.
type ClusterProbe interface {
	// Clustered reports whether this host is part of a cluster.
	Clustered() bool
}
