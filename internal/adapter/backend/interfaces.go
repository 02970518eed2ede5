// Package backend provides the network configuration backend adapters.
// Three variants of the same concern sit behind the NetworkBackend port:
// legacy ifupdown (reboot required), ifupdown2 (live reload via ifreload)
// and netplan (live reload via netplan apply).
package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/jamsub/sunder/internal/pkg/ipaddr"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// IfupdownBackend manages a Debian-style /etc/network/interfaces file with
// no live-reload daemon available. Applying through it always ends in
// PendingReboot.
type IfupdownBackend struct {
	path string
}

// Ensure IfupdownBackend implements the NetworkBackend port
var _ port.NetworkBackend = (*IfupdownBackend)(nil)

// NewIfupdownBackend creates a legacy ifupdown backend for the given
// interfaces file path.
func NewIfupdownBackend(path string) *IfupdownBackend {
	return &IfupdownBackend{path: path}
}

func (b *IfupdownBackend) Name() string { return "ifupdown" }

func (b *IfupdownBackend) ConfigPath() string { return b.path }

func (b *IfupdownBackend) SupportsReload() bool { return false }

func (b *IfupdownBackend) Reload(ctx context.Context) error {
	return fmt.Errorf("ifupdown backend: %w", types.ErrToolUnavailable)
}

// BuildArtifact rewrites the interfaces file line by line. Only the
// address, netmask and gateway option lines inside the stanza of the
// target interface are replaced; every other line, including the loopback
// stanza, sibling bridge blocks, comments and blank lines, is carried
// through byte for byte.
func (b *IfupdownBackend) BuildArtifact(cfg types.NetworkConfig, existing []byte) ([]byte, error) {
	target := cfg.AddressedInterface()

	lines := strings.Split(string(existing), "\n")
	inTarget := false
	found := false

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "iface":
			inTarget = len(fields) >= 2 && fields[1] == target
			if inTarget {
				found = true
			}
			continue
		case "auto", "allow-hotplug", "allow-auto", "mapping", "source", "source-directory":
			// A new top-level stanza ends the current iface block.
			inTarget = false
			continue
		}

		if !inTarget {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		switch fields[0] {
		case "address":
			// Preserve whichever address form the file already uses:
			// CIDR ("address 10.0.0.2/24") or plain plus a netmask line.
			if len(fields) >= 2 && strings.Contains(fields[1], "/") {
				prefix, err := ipaddr.MaskToPrefix(cfg.Netmask)
				if err != nil {
					return nil, err
				}
				lines[i] = fmt.Sprintf("%saddress %s/%d", indent, cfg.IP, prefix)
			} else {
				lines[i] = indent + "address " + cfg.IP
			}
		case "netmask":
			lines[i] = indent + "netmask " + cfg.Netmask
		case "gateway":
			lines[i] = indent + "gateway " + cfg.Gateway
		}
	}

	if !found {
		return nil, fmt.Errorf("no stanza for interface %s in %s", target, b.path)
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// Ifupdown2Backend manages the same interfaces file but applies changes
// live through ifreload.
type Ifupdown2Backend struct {
	IfupdownBackend
	runner port.Runner
}

// Ensure Ifupdown2Backend implements the NetworkBackend port
var _ port.NetworkBackend = (*Ifupdown2Backend)(nil)

// NewIfupdown2Backend creates an ifupdown2 backend for the given
// interfaces file path.
func NewIfupdown2Backend(path string, runner port.Runner) *Ifupdown2Backend {
	return &Ifupdown2Backend{
		IfupdownBackend: IfupdownBackend{path: path},
		runner:          runner,
	}
}

func (b *Ifupdown2Backend) Name() string { return "ifupdown2" }

func (b *Ifupdown2Backend) SupportsReload() bool { return true }

// Reload re-applies the full interfaces configuration.
func (b *Ifupdown2Backend) Reload(ctx context.Context) error {
	if err := b.runner.Run("ifreload", "-a"); err != nil {
		return fmt.Errorf("ifreload failed: %w", err)
	}
	return nil
}
