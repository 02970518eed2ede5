// Package mutator implements the backup and artifact-construction stage.
// Nothing in this package touches live system state; it copies files into
// the backup directory and renders new configuration in memory.
package mutator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// BackupEntry names one file of interest for the pre-mutation snapshot.
type BackupEntry struct {
	Path     string
	Required bool
}

// Mutator snapshots configuration files and builds replacement artifacts.
type Mutator struct {
	fileMgr    port.FileManager
	backupRoot string
	now        func() time.Time
}

// New creates a mutator writing snapshots under backupRoot.
func New(fileMgr port.FileManager, backupRoot string) *Mutator {
	return &Mutator{fileMgr: fileMgr, backupRoot: backupRoot, now: time.Now}
}

// Backup copies each present file into a timestamped directory under the
// backup root. A missing optional file is skipped; a missing required file
// is a fatal precondition. Backups are retained indefinitely.
func (m *Mutator) Backup(entries []BackupEntry) (*types.Backup, error) {
	logger := logging.WithComponent("mutator")

	ts := m.now()
	dir := filepath.Join(m.backupRoot, ts.Format("20060102-150405"))

	backup := &types.Backup{
		Dir:       dir,
		Timestamp: ts,
		Files:     map[string]string{},
	}

	for _, entry := range entries {
		if !m.fileMgr.FileExists(entry.Path) {
			if entry.Required {
				return nil, &types.PreconditionError{Reason: "required file " + entry.Path + " does not exist"}
			}
			logger.WithField("path", entry.Path).Debug("Optional file absent, not backed up")
			continue
		}

		dst := filepath.Join(dir, filepath.Base(entry.Path))
		if err := m.fileMgr.CopyFile(entry.Path, dst); err != nil {
			return nil, fmt.Errorf("backup of %s failed: %w", entry.Path, err)
		}
		backup.Files[entry.Path] = dst
		logger.WithField("path", entry.Path).WithField("backup", dst).Info("Backed up")
	}

	return backup, nil
}

// BuildHostsArtifact rewrites the hosts file for the new IP.
//
// Line-oriented strategy: the line whose first token equals currentIP is
// rewritten to newIP, keeping its host names and spacing. Any other line
// naming the host itself is dropped so exactly one entry remains. All
// unrelated lines, comments and IPv6 boilerplate are carried through
// byte for byte. When no line matched, an entry is appended.
func BuildHostsArtifact(existing []byte, hostname, currentIP, newIP, path string) types.ConfigArtifact {
	short, _, _ := strings.Cut(hostname, ".")

	lines := strings.Split(string(existing), "\n")

	// Find the entry bound to the current IP first, so duplicate lines for
	// our own name are dropped regardless of where they sit in the file.
	match := -1
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) > 0 && !strings.HasPrefix(fields[0], "#") && fields[0] == currentIP {
			match = i
			break
		}
	}

	out := make([]string, 0, len(lines)+1)
	replaced := match >= 0

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			out = append(out, line)
			continue
		}

		if i == match {
			// Splice the new IP in place, keeping indentation and the
			// spacing before the host names.
			idx := strings.Index(line, fields[0])
			out = append(out, line[:idx]+newIP+line[idx+len(fields[0]):])
			continue
		}

		if replaced && namesHost(fields[1:], hostname, short) {
			// Duplicate entry for our own name; drop it.
			continue
		}
		out = append(out, line)
	}

	if !replaced {
		entry := fmt.Sprintf("%s %s", newIP, hostname)
		if short != hostname {
			entry += " " + short
		}
		// Keep the trailing newline, if any, at the end.
		if len(out) > 0 && out[len(out)-1] == "" {
			out = append(out[:len(out)-1], entry, "")
		} else {
			out = append(out, entry)
		}
	}

	return types.ConfigArtifact{
		Path:    path,
		Content: []byte(strings.Join(out, "\n")),
		Mode:    0644,
	}
}

func namesHost(names []string, hostname, short string) bool {
	for _, n := range names {
		if n == hostname || n == short {
			return true
		}
	}
	return false
}

// BuildNetworkArtifact renders the backend's configuration file for the
// confirmed target, reading the existing file so unrelated stanzas are
// preserved. A missing file yields an empty input, which only the netplan
// backend accepts.
func (m *Mutator) BuildNetworkArtifact(backend port.NetworkBackend, cfg types.NetworkConfig) (types.ConfigArtifact, error) {
	var existing []byte
	if m.fileMgr.FileExists(backend.ConfigPath()) {
		data, err := m.fileMgr.ReadFile(backend.ConfigPath())
		if err != nil {
			return types.ConfigArtifact{}, err
		}
		existing = data
	}

	content, err := backend.BuildArtifact(cfg, existing)
	if err != nil {
		return types.ConfigArtifact{}, fmt.Errorf("building %s artifact: %w", backend.Name(), err)
	}
	return types.ConfigArtifact{Path: backend.ConfigPath(), Content: content, Mode: 0644}, nil
}
