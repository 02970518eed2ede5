package backend

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// Paths tells detection where each backend keeps its configuration.
type Paths struct {
	InterfacesFile string // e.g. /etc/network/interfaces
	NetplanDir     string // e.g. /etc/netplan
}

// Detect selects the network backend present on this host. Preference
// order: netplan (binary plus at least one YAML in the netplan directory),
// then ifupdown2 (interfaces file plus ifreload on PATH), then legacy
// ifupdown. A host with neither a netplan config nor an interfaces file is
// a fatal precondition.
func Detect(paths Paths, fileMgr port.FileManager, runner port.Runner) (port.NetworkBackend, error) {
	logger := logging.WithComponent("backend")

	if runner.LookPath("netplan") {
		if p := firstNetplanFile(paths.NetplanDir); p != "" {
			logger.WithField("config", p).Info("Detected netplan backend")
			return NewNetplanBackend(p, runner), nil
		}
	}

	if fileMgr.FileExists(paths.InterfacesFile) {
		if runner.LookPath("ifreload") {
			logger.WithField("config", paths.InterfacesFile).Info("Detected ifupdown2 backend")
			return NewIfupdown2Backend(paths.InterfacesFile, runner), nil
		}
		logger.WithField("config", paths.InterfacesFile).Info("Detected legacy ifupdown backend")
		return NewIfupdownBackend(paths.InterfacesFile), nil
	}

	return nil, &types.PreconditionError{
		Reason: "no network configuration found: neither " + paths.InterfacesFile + " nor a netplan config exists",
	}
}

// firstNetplanFile returns the lexically first YAML file in dir. Netplan
// merges later files over earlier ones, so this is the base file and the
// one operators conventionally edit.
func firstNetplanFile(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0])
}
