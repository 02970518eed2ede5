// Package collector implements the configuration collection stage: detect
// the current host addressing, gather the target addressing from the
// operator, and validate it.
package collector

import (
	"fmt"
	"io"
	"strings"

	"github.com/jamsub/sunder/internal/pkg/ipaddr"
	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/pkg/ui"
	"github.com/jamsub/sunder/internal/port"
	"github.com/jamsub/sunder/internal/types"
)

// Collector gathers and validates the target NetworkConfig.
type Collector struct {
	netMgr   port.NetworkManager
	prompter port.Prompter
	out      io.Writer
}

// New creates a collector.
func New(netMgr port.NetworkManager, prompter port.Prompter, out io.Writer) *Collector {
	return &Collector{netMgr: netMgr, prompter: prompter, out: out}
}

// DetectCurrent inspects live interface and routing state to populate
// best-effort defaults. Detection is advisory; missing pieces stay empty
// and the operator fills them in.
func (c *Collector) DetectCurrent() types.NetworkConfig {
	logger := logging.WithComponent("collector")
	var current types.NetworkConfig

	links, err := c.netMgr.ListLinks()
	if err != nil {
		logger.WithError(err).Warn("Failed to list links, detection skipped")
		return current
	}

	for _, link := range links {
		attrs := link.Attrs()
		if attrs.Name == "lo" {
			continue
		}

		addrs, err := c.netMgr.ListAddresses(link)
		if err != nil || len(addrs) == 0 {
			continue
		}
		ip4 := addrs[0].IPNet.IP.To4()
		if ip4 == nil {
			continue
		}

		if link.Type() == "bridge" {
			current.Bridge = attrs.Name
		}
		current.IP = ip4.String()
		ones, _ := addrs[0].IPNet.Mask.Size()
		if mask, err := ipaddr.PrefixToMask(ones); err == nil {
			current.Netmask = mask
		}

		// The physical interface is the bridge member, if any.
		if current.Bridge != "" {
			for _, member := range links {
				if member.Attrs().MasterIndex == attrs.Index {
					current.Interface = member.Attrs().Name
					break
				}
			}
		} else {
			current.Interface = attrs.Name
		}
		break
	}

	routes, err := c.netMgr.ListRoutes()
	if err != nil {
		logger.WithError(err).Warn("Failed to list routes")
	} else {
		for _, route := range routes {
			if route.Dst == nil && route.Gw != nil {
				current.Gateway = route.Gw.String()
				break
			}
		}
	}

	logger.WithField("ip", current.IP).WithField("bridge", current.Bridge).Debug("Detected current configuration")
	return current
}

// PromptNew gathers the target configuration interactively, using current
// values as defaults. Invalid input re-prompts indefinitely. It shows a
// final summary and returns ErrCancelled if the operator declines, before
// any side effect has happened.
func (c *Collector) PromptNew(current types.NetworkConfig) (types.NetworkConfig, error) {
	target := types.NetworkConfig{}

	iface, err := c.prompter.Prompt("Physical interface", current.Interface)
	if err != nil {
		return target, err
	}
	target.Interface = iface

	bridge, err := c.prompter.Prompt("Bridge interface (empty for none)", current.Bridge)
	if err != nil {
		return target, err
	}
	target.Bridge = bridge

	if target.Interface == "" && target.Bridge == "" {
		return target, &types.PreconditionError{Reason: "no target interface given and none detected"}
	}

	target.IP, err = c.promptIP("New IP address", current.IP)
	if err != nil {
		return target, err
	}

	target.Netmask, err = c.promptMask("Subnet mask", current.Netmask)
	if err != nil {
		return target, err
	}

	target.Gateway, err = c.promptIP("Gateway", current.Gateway)
	if err != nil {
		return target, err
	}

	target.DNS, err = c.promptDNS(current.DNS)
	if err != nil {
		return target, err
	}

	c.printSummary(current, target)

	ok, err := c.prompter.Confirm("Proceed with this configuration?")
	if err != nil {
		return target, err
	}
	if !ok {
		return target, types.ErrCancelled
	}
	return target, nil
}

// promptIP re-prompts until the input passes strict dotted-quad validation.
func (c *Collector) promptIP(label, def string) (string, error) {
	for {
		value, err := c.prompter.Prompt(label, def)
		if err != nil {
			return "", err
		}
		if ipaddr.ValidIPv4(value) {
			return value, nil
		}
		verr := &types.ValidationError{Field: label, Value: value, Reason: "expected four dot-separated octets in 0-255, no leading zeros"}
		fmt.Fprintln(c.out, ui.ErrorMsg("%v", verr))
	}
}

// promptMask re-prompts until the mask converts to a prefix length.
func (c *Collector) promptMask(label, def string) (string, error) {
	for {
		value, err := c.prompter.Prompt(label, def)
		if err != nil {
			return "", err
		}
		_, maskErr := ipaddr.MaskToPrefix(value)
		if maskErr == nil {
			return value, nil
		}
		verr := &types.ValidationError{Field: label, Value: value, Reason: maskErr.Error()}
		fmt.Fprintln(c.out, ui.ErrorMsg("%v", verr))
	}
}

// promptDNS accepts an optional comma-separated nameserver list.
func (c *Collector) promptDNS(current []string) ([]string, error) {
	for {
		value, err := c.prompter.Prompt("DNS servers (comma separated, empty to keep)", strings.Join(current, ","))
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(value) == "" {
			return current, nil
		}

		var servers []string
		valid := true
		for _, s := range strings.Split(value, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if !ipaddr.ValidIPv4(s) {
				fmt.Fprintln(c.out, ui.ErrorMsg("invalid DNS server %q", s))
				valid = false
				break
			}
			servers = append(servers, s)
		}
		if valid {
			return servers, nil
		}
	}
}

func (c *Collector) printSummary(current, target types.NetworkConfig) {
	prefix, _ := ipaddr.MaskToPrefix(target.Netmask)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, ui.BoldStyle.Render("Network configuration change"))
	fmt.Fprint(c.out, ui.KeyValues("  ",
		ui.KV("interface", target.Interface),
		ui.KV("bridge", orDash(target.Bridge)),
		ui.KV("current IP", orDash(current.IP)),
		ui.KV("new IP", fmt.Sprintf("%s/%d", target.IP, prefix)),
		ui.KV("gateway", target.Gateway),
		ui.KV("dns", orDash(strings.Join(target.DNS, ", "))),
	))
	fmt.Fprintln(c.out)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
