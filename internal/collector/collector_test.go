//go:build unit

package collector

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/jamsub/sunder/internal/mock"
	"github.com/jamsub/sunder/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func TestCollector_DetectCurrent(t *testing.T) {
	t.Run("BridgedHost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lo := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "lo", Index: 1}}
		bridge := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "vmbr0", Index: 4}}
		member := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "eno1", Index: 2, MasterIndex: 4}}

		netMgr := mock.NewMockNetworkManager(ctrl)
		netMgr.EXPECT().ListLinks().Return([]netlink.Link{lo, bridge, member}, nil)
		netMgr.EXPECT().ListAddresses(bridge).Return([]netlink.Addr{
			{IPNet: &net.IPNet{IP: net.ParseIP("192.168.1.10"), Mask: net.CIDRMask(24, 32)}},
		}, nil)
		netMgr.EXPECT().ListRoutes().Return([]netlink.Route{
			{Dst: &net.IPNet{IP: net.ParseIP("10.0.0.0"), Mask: net.CIDRMask(8, 32)}},
			{Gw: net.ParseIP("192.168.1.1")},
		}, nil)

		c := New(netMgr, mock.NewMockPrompter(ctrl), &bytes.Buffer{})
		current := c.DetectCurrent()

		assert.Equal(t, "vmbr0", current.Bridge)
		assert.Equal(t, "eno1", current.Interface)
		assert.Equal(t, "192.168.1.10", current.IP)
		assert.Equal(t, "255.255.255.0", current.Netmask)
		assert.Equal(t, "192.168.1.1", current.Gateway)
	})

	t.Run("PlainInterface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eth := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "eth0", Index: 2}}

		netMgr := mock.NewMockNetworkManager(ctrl)
		netMgr.EXPECT().ListLinks().Return([]netlink.Link{eth}, nil)
		netMgr.EXPECT().ListAddresses(eth).Return([]netlink.Addr{
			{IPNet: &net.IPNet{IP: net.ParseIP("10.1.2.3"), Mask: net.CIDRMask(16, 32)}},
		}, nil)
		netMgr.EXPECT().ListRoutes().Return(nil, nil)

		current := New(netMgr, mock.NewMockPrompter(ctrl), &bytes.Buffer{}).DetectCurrent()

		assert.Empty(t, current.Bridge)
		assert.Equal(t, "eth0", current.Interface)
		assert.Equal(t, "10.1.2.3", current.IP)
		assert.Equal(t, "255.255.0.0", current.Netmask)
	})

	t.Run("DetectionFailureYieldsEmptyDefaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		netMgr := mock.NewMockNetworkManager(ctrl)
		netMgr.EXPECT().ListLinks().Return(nil, errors.New("netlink: permission denied"))

		current := New(netMgr, mock.NewMockPrompter(ctrl), &bytes.Buffer{}).DetectCurrent()
		assert.Equal(t, types.NetworkConfig{}, current)
	})
}

func TestCollector_PromptNew(t *testing.T) {
	current := types.NetworkConfig{
		Interface: "eno1",
		Bridge:    "vmbr0",
		IP:        "192.168.1.10",
		Netmask:   "255.255.255.0",
		Gateway:   "192.168.1.1",
	}

	t.Run("InvalidInputReprompts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		out := &bytes.Buffer{}
		prompter := mock.NewMockPrompter(ctrl)
		gomock.InOrder(
			prompter.EXPECT().Prompt("Physical interface", "eno1").Return("eno1", nil),
			prompter.EXPECT().Prompt("Bridge interface (empty for none)", "vmbr0").Return("vmbr0", nil),
			prompter.EXPECT().Prompt("New IP address", "192.168.1.10").Return("192.168.2.999", nil),
			prompter.EXPECT().Prompt("New IP address", "192.168.1.10").Return("192.168.02.20", nil),
			prompter.EXPECT().Prompt("New IP address", "192.168.1.10").Return("192.168.2.20", nil),
			prompter.EXPECT().Prompt("Subnet mask", "255.255.255.0").Return("255.255.255.3", nil),
			prompter.EXPECT().Prompt("Subnet mask", "255.255.255.0").Return("255.255.255.252", nil),
			prompter.EXPECT().Prompt("Gateway", "192.168.1.1").Return("192.168.2.1", nil),
			prompter.EXPECT().Prompt("DNS servers (comma separated, empty to keep)", "").Return("1.1.1.1, 9.9.9.9", nil),
			prompter.EXPECT().Confirm("Proceed with this configuration?").Return(true, nil),
		)

		c := New(mock.NewMockNetworkManager(ctrl), prompter, out)
		target, err := c.PromptNew(current)
		require.NoError(t, err)

		assert.Equal(t, "eno1", target.Interface)
		assert.Equal(t, "vmbr0", target.Bridge)
		assert.Equal(t, "192.168.2.20", target.IP)
		assert.Equal(t, "255.255.255.252", target.Netmask)
		assert.Equal(t, "192.168.2.1", target.Gateway)
		assert.Equal(t, []string{"1.1.1.1", "9.9.9.9"}, target.DNS)

		// Each rejected input produced a visible validation message.
		assert.Contains(t, out.String(), "192.168.2.999")
		assert.Contains(t, out.String(), "192.168.02.20")
		assert.Contains(t, out.String(), "255.255.255.3")
	})

	t.Run("DeclinedSummaryCancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		prompter := mock.NewMockPrompter(ctrl)
		gomock.InOrder(
			prompter.EXPECT().Prompt("Physical interface", "eno1").Return("eno1", nil),
			prompter.EXPECT().Prompt("Bridge interface (empty for none)", "vmbr0").Return("vmbr0", nil),
			prompter.EXPECT().Prompt("New IP address", "192.168.1.10").Return("192.168.2.20", nil),
			prompter.EXPECT().Prompt("Subnet mask", "255.255.255.0").Return("255.255.255.0", nil),
			prompter.EXPECT().Prompt("Gateway", "192.168.1.1").Return("192.168.2.1", nil),
			prompter.EXPECT().Prompt("DNS servers (comma separated, empty to keep)", "").Return("", nil),
			prompter.EXPECT().Confirm("Proceed with this configuration?").Return(false, nil),
		)

		c := New(mock.NewMockNetworkManager(ctrl), prompter, &bytes.Buffer{})
		_, err := c.PromptNew(current)
		assert.ErrorIs(t, err, types.ErrCancelled)
	})

	t.Run("NoInterfaceAtAll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		prompter := mock.NewMockPrompter(ctrl)
		gomock.InOrder(
			prompter.EXPECT().Prompt("Physical interface", "").Return("", nil),
			prompter.EXPECT().Prompt("Bridge interface (empty for none)", "").Return("", nil),
		)

		c := New(mock.NewMockNetworkManager(ctrl), prompter, &bytes.Buffer{})
		_, err := c.PromptNew(types.NetworkConfig{})
		var pre *types.PreconditionError
		require.ErrorAs(t, err, &pre)
	})
}
