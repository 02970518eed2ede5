// Package cluster provides the cluster membership probe adapter.
package cluster

import (
	"github.com/jamsub/sunder/internal/port"
)

// DefaultCorosyncConf is where Proxmox keeps the cluster configuration.
const DefaultCorosyncConf = "/etc/pve/corosync.conf"

// CorosyncProbe implements the ClusterProbe port by checking for a
// corosync configuration file. Membership only gates an operator warning;
// the tool never mutates cluster state.
type CorosyncProbe struct {
	path    string
	fileMgr port.FileManager
}

// Ensure CorosyncProbe implements the ClusterProbe port
var _ port.ClusterProbe = (*CorosyncProbe)(nil)

// NewCorosyncProbe creates a probe for the given corosync config path.
func NewCorosyncProbe(path string, fileMgr port.FileManager) *CorosyncProbe {
	return &CorosyncProbe{path: path, fileMgr: fileMgr}
}

// Clustered reports whether the corosync configuration exists.
func (p *CorosyncProbe) Clustered() bool {
	return p.fileMgr.FileExists(p.path)
}
