package backend

import (
	"context"
	"fmt"

	"github.com/jamsub/sunder/internal/pkg/ipaddr"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"

	"gopkg.in/yaml.v3"
)

// NetplanBackend manages a declarative netplan YAML file and applies it
// live through netplan apply.
//
// Artifact strategy: regenerate-and-splice. The existing file is parsed,
// the stanza for the target device is replaced, and every other device
// stanza is re-emitted from the parsed document. Field order and comments
// of the original file are not preserved; unrelated devices are.
type NetplanBackend struct {
	path   string
	runner port.Runner
}

// Ensure NetplanBackend implements the NetworkBackend port
var _ port.NetworkBackend = (*NetplanBackend)(nil)

// NewNetplanBackend creates a netplan backend for the given YAML file path.
func NewNetplanBackend(path string, runner port.Runner) *NetplanBackend {
	return &NetplanBackend{path: path, runner: runner}
}

func (b *NetplanBackend) Name() string { return "netplan" }

func (b *NetplanBackend) ConfigPath() string { return b.path }

func (b *NetplanBackend) SupportsReload() bool { return true }

// Reload renders and applies the netplan configuration.
func (b *NetplanBackend) Reload(ctx context.Context) error {
	if err := b.runner.Run("netplan", "apply"); err != nil {
		return fmt.Errorf("netplan apply failed: %w", err)
	}
	return nil
}

type netplanDoc struct {
	Network netplanNetwork `yaml:"network"`
}

type netplanNetwork struct {
	Version   int                       `yaml:"version"`
	Renderer  string                    `yaml:"renderer,omitempty"`
	Ethernets map[string]*netplanDevice `yaml:"ethernets,omitempty"`
	Bridges   map[string]*netplanBridge `yaml:"bridges,omitempty"`
}

type netplanDevice struct {
	DHCP4       bool                `yaml:"dhcp4"`
	Addresses   []string            `yaml:"addresses,omitempty"`
	Routes      []netplanRoute      `yaml:"routes,omitempty"`
	Nameservers *netplanNameservers `yaml:"nameservers,omitempty"`
}

type netplanBridge struct {
	netplanDevice `yaml:",inline"`
	Interfaces    []string `yaml:"interfaces,omitempty"`
}

type netplanRoute struct {
	To  string `yaml:"to"`
	Via string `yaml:"via"`
}

type netplanNameservers struct {
	Addresses []string `yaml:"addresses,omitempty"`
}

// BuildArtifact produces the new netplan YAML. The existing document is
// parsed so sibling devices survive; the target ethernet or bridge stanza
// is regenerated from cfg.
func (b *NetplanBackend) BuildArtifact(cfg types.NetworkConfig, existing []byte) ([]byte, error) {
	var doc netplanDoc
	if len(existing) > 0 {
		if err := yaml.Unmarshal(existing, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", b.path, err)
		}
	}
	doc.Network.Version = 2

	cidr, err := ipaddr.CIDR(cfg.IP, cfg.Netmask)
	if err != nil {
		return nil, err
	}

	dev := netplanDevice{
		Addresses: []string{cidr},
		Routes:    []netplanRoute{{To: "default", Via: cfg.Gateway}},
	}
	if len(cfg.DNS) > 0 {
		dev.Nameservers = &netplanNameservers{Addresses: cfg.DNS}
	}

	if cfg.Bridge != "" {
		if doc.Network.Bridges == nil {
			doc.Network.Bridges = map[string]*netplanBridge{}
		}
		br := doc.Network.Bridges[cfg.Bridge]
		if br == nil {
			br = &netplanBridge{Interfaces: []string{cfg.Interface}}
		}
		br.netplanDevice = dev
		if len(br.Interfaces) == 0 && cfg.Interface != "" {
			br.Interfaces = []string{cfg.Interface}
		}
		doc.Network.Bridges[cfg.Bridge] = br

		// The member interface carries no address of its own.
		if cfg.Interface != "" {
			if doc.Network.Ethernets == nil {
				doc.Network.Ethernets = map[string]*netplanDevice{}
			}
			if _, ok := doc.Network.Ethernets[cfg.Interface]; !ok {
				doc.Network.Ethernets[cfg.Interface] = &netplanDevice{}
			}
		}
	} else {
		if doc.Network.Ethernets == nil {
			doc.Network.Ethernets = map[string]*netplanDevice{}
		}
		doc.Network.Ethernets[cfg.Interface] = &dev
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render netplan config: %w", err)
	}
	return out, nil
}
