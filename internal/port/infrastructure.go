// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for live network state inspection.
// This interface abstracts netlink reads used for detection and post-apply
// verification; the tool mutates addressing through configuration files,
// never directly through netlink.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListLinks returns all network links
	ListLinks() ([]netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// ListRoutes returns IPv4 routes
	ListRoutes() ([]netlink.Route, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// CopyFile copies src to dst, creating parent directories as needed
	CopyFile(src, dst string) error

	// MkdirAll creates a directory and any missing parents
	MkdirAll(dir string, perm int) error

	// Remove deletes a file, ignoring a missing one
	Remove(filename string) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// Runner is a port for subprocess execution so adapters over host binaries
// (qm, ifreload, netplan, shutdown) can be unit-tested without a real host.
type Runner interface {
	// Run executes a command, discarding stdout
	Run(name string, args ...string) error

	// Output executes a command and returns trimmed combined output
	Output(name string, args ...string) (string, error)

	// LookPath reports whether a binary is present on PATH
	LookPath(name string) bool
}
