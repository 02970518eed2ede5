//go:build unit

package hypervisor

import (
	"context"
	"testing"

	"github.com/jamsub/sunder/internal/mock"
	"github.com/jamsub/sunder/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const qmListOutput = `      VMID NAME                 STATUS     MEM(MB)    BOOTDISK(GB) PID
       100 web-frontend         running    4096              32.00 1234
       101 db-primary           running    8192              64.00 2345
       102 staging              stopped    2048              16.00 0`

func TestQMAdapter_ListRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockRunner(ctrl)
	adapter := NewQMAdapter(runner)

	t.Run("ParsesRunningVMs", func(t *testing.T) {
		runner.EXPECT().Output("qm", "list").Return(qmListOutput, nil)

		vms, err := adapter.ListRunning(context.Background())
		require.NoError(t, err)
		require.Len(t, vms, 2)
		assert.Equal(t, types.VMHandle{ID: 100, Name: "web-frontend", Status: "running"}, vms[0])
		assert.Equal(t, types.VMHandle{ID: 101, Name: "db-primary", Status: "running"}, vms[1])
	})

	t.Run("EmptyList", func(t *testing.T) {
		runner.EXPECT().Output("qm", "list").Return("VMID NAME STATUS MEM(MB) BOOTDISK(GB) PID", nil)

		vms, err := adapter.ListRunning(context.Background())
		require.NoError(t, err)
		assert.Empty(t, vms)
	})

	t.Run("ListFailure", func(t *testing.T) {
		runner.EXPECT().Output("qm", "list").Return("", assert.AnError)

		_, err := adapter.ListRunning(context.Background())
		assert.Error(t, err)
	})
}

func TestQMAdapter_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockRunner(ctrl)
	adapter := NewQMAdapter(runner)

	runner.EXPECT().Output("qm", "status", "100").Return("status: stopped", nil)

	status, err := adapter.Status(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "stopped", status)
}

func TestQMAdapter_ShutdownAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockRunner(ctrl)
	adapter := NewQMAdapter(runner)

	runner.EXPECT().Run("qm", "shutdown", "100").Return(nil)
	assert.NoError(t, adapter.Shutdown(context.Background(), 100))

	runner.EXPECT().Run("qm", "stop", "101").Return(assert.AnError)
	assert.Error(t, adapter.Stop(context.Background(), 101))
}

func TestQMAdapter_Available(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockRunner(ctrl)
	adapter := NewQMAdapter(runner)

	runner.EXPECT().LookPath("qm").Return(true)
	assert.True(t, adapter.Available())

	runner.EXPECT().LookPath("qm").Return(false)
	assert.False(t, adapter.Available())
}
