//go:build unit

package workflow

import (
	"bytes"
	"context"
	"testing"

	"github.com/jamsub/sunder/internal/mock"
	"github.com/jamsub/sunder/internal/pkg/config"
	"github.com/jamsub/sunder/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRun_Preconditions(t *testing.T) {
	t.Run("NonRoot", func(t *testing.T) {
		deps := Deps{
			Config:  config.Default(),
			Out:     &bytes.Buffer{},
			Geteuid: func() int { return 1000 },
		}

		err := Run(context.Background(), deps)
		var pre *types.PreconditionError
		require.ErrorAs(t, err, &pre)
		assert.Contains(t, pre.Reason, "root")
	})

	t.Run("ClusteredHostRefused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cluster := mock.NewMockClusterProbe(ctrl)
		cluster.EXPECT().Clustered().Return(true)

		out := &bytes.Buffer{}
		deps := Deps{
			Config:  config.Default(),
			Cluster: cluster,
			Out:     out,
			Geteuid: func() int { return 0 },
		}

		err := Run(context.Background(), deps)
		var pre *types.PreconditionError
		require.ErrorAs(t, err, &pre)
		assert.Contains(t, pre.Reason, "clustered")
		assert.Contains(t, out.String(), "cluster-wide coordination")
	})

	t.Run("LockHeld", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cluster := mock.NewMockClusterProbe(ctrl)
		cluster.EXPECT().Clustered().Return(false)

		fileMgr := mock.NewMockFileManager(ctrl)
		fileMgr.EXPECT().FileExists("/run/sunder.lock").Return(true)

		deps := Deps{
			Config:  config.Default(),
			Cluster: cluster,
			FileMgr: fileMgr,
			Out:     &bytes.Buffer{},
			Geteuid: func() int { return 0 },
		}

		err := Run(context.Background(), deps)
		var pre *types.PreconditionError
		require.ErrorAs(t, err, &pre)
		assert.Contains(t, pre.Reason, "lock file")
	})
}

// Declining the apply gate still persists the staged artifacts, so the
// change takes effect on the next reboot, and exits cleanly.
func TestRun_DeclinedApplyGateStagesArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	out := &bytes.Buffer{}

	cluster := mock.NewMockClusterProbe(ctrl)
	cluster.EXPECT().Clustered().Return(false)

	netMgr := mock.NewMockNetworkManager(ctrl)
	netMgr.EXPECT().ListLinks().Return(nil, nil)
	netMgr.EXPECT().ListRoutes().Return(nil, nil)

	prompter := mock.NewMockPrompter(ctrl)
	gomock.InOrder(
		prompter.EXPECT().Prompt("Physical interface", "").Return("eno1", nil),
		prompter.EXPECT().Prompt("Bridge interface (empty for none)", "").Return("vmbr0", nil),
		prompter.EXPECT().Prompt("New IP address", "").Return("192.168.2.20", nil),
		prompter.EXPECT().Prompt("Subnet mask", "").Return("255.255.255.0", nil),
		prompter.EXPECT().Prompt("Gateway", "").Return("192.168.2.1", nil),
		prompter.EXPECT().Prompt("DNS servers (comma separated, empty to keep)", "").Return("", nil),
		prompter.EXPECT().Confirm("Proceed with this configuration?").Return(true, nil),
		prompter.EXPECT().Confirm("Apply the new configuration now?").Return(false, nil),
	)

	backend := mock.NewMockNetworkBackend(ctrl)
	backend.EXPECT().ConfigPath().Return("/etc/network/interfaces").AnyTimes()
	backend.EXPECT().BuildArtifact(gomock.Any(), []byte("old config")).Return([]byte("new config"), nil)

	fileMgr := mock.NewMockFileManager(ctrl)
	fileMgr.EXPECT().FileExists("/run/sunder.lock").Return(false)
	fileMgr.EXPECT().WriteFile("/run/sunder.lock", gomock.Any(), 0644).Return(nil)
	fileMgr.EXPECT().FileExists("/etc/network/interfaces").Return(true).Times(2)
	fileMgr.EXPECT().CopyFile("/etc/network/interfaces", gomock.Any()).Return(nil)
	fileMgr.EXPECT().FileExists("/etc/hosts").Return(false)
	fileMgr.EXPECT().FileExists("/etc/resolv.conf").Return(false)
	fileMgr.EXPECT().FileExists("/etc/pve/corosync.conf").Return(false)
	fileMgr.EXPECT().ReadFile("/etc/network/interfaces").Return([]byte("old config"), nil)
	fileMgr.EXPECT().WriteFile("/etc/network/interfaces", []byte("new config"), 0644).Return(nil)
	fileMgr.EXPECT().Remove("/run/sunder.lock").Return(nil)

	deps := Deps{
		Config:   cfg,
		Backend:  backend,
		FileMgr:  fileMgr,
		NetMgr:   netMgr,
		Cluster:  cluster,
		Prompter: prompter,
		Out:      out,
		Geteuid:  func() int { return 0 },
	}

	err := Run(context.Background(), deps)
	assert.ErrorIs(t, err, types.ErrCancelled)
	assert.Contains(t, out.String(), "staged but not applied")
}

func TestDrainAndAct(t *testing.T) {
	newDeps := func(hv *mock.MockHypervisor, hostCtl *mock.MockHostController, prompter *mock.MockPrompter, out *bytes.Buffer) Deps {
		return Deps{
			Config:     config.Default(),
			Hypervisor: hv,
			HostCtl:    hostCtl,
			Prompter:   prompter,
			Out:        out,
		}
	}

	t.Run("ShutdownAfterDrain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hv := mock.NewMockHypervisor(ctrl)
		hv.EXPECT().Available().Return(false)

		prompter := mock.NewMockPrompter(ctrl)
		prompter.EXPECT().Prompt(gomock.Any(), "3").Return("1", nil)

		hostCtl := mock.NewMockHostController(ctrl)
		hostCtl.EXPECT().Shutdown(gomock.Any()).Return(nil)

		out := &bytes.Buffer{}
		require.NoError(t, DrainAndAct(context.Background(), newDeps(hv, hostCtl, prompter, out)))
		assert.Contains(t, out.String(), "drain skipped")
	})

	t.Run("ExitWithoutAction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hv := mock.NewMockHypervisor(ctrl)
		hv.EXPECT().Available().Return(false)

		prompter := mock.NewMockPrompter(ctrl)
		prompter.EXPECT().Prompt(gomock.Any(), "3").Return("3", nil)

		out := &bytes.Buffer{}
		require.NoError(t, DrainAndAct(context.Background(), newDeps(hv, mock.NewMockHostController(ctrl), prompter, out)))
		assert.Contains(t, out.String(), "leaving host running")
	})

	t.Run("InvalidSelectionIsFatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hv := mock.NewMockHypervisor(ctrl)
		hv.EXPECT().Available().Return(false)

		prompter := mock.NewMockPrompter(ctrl)
		prompter.EXPECT().Prompt(gomock.Any(), "3").Return("yes", nil)

		err := DrainAndAct(context.Background(), newDeps(hv, mock.NewMockHostController(ctrl), prompter, &bytes.Buffer{}))
		assert.Error(t, err)
	})
}
