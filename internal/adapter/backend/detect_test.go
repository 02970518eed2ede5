//go:build unit

package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jamsub/sunder/internal/mock"
	"github.com/jamsub/sunder/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDetect(t *testing.T) {
	writeFile := func(t *testing.T, dir, name string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("network:\n  version: 2\n"), 0o644))
		return p
	}

	t.Run("PrefersNetplan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeFile(t, dir, "50-cloud-init.yaml")
		first := writeFile(t, dir, "00-installer.yaml")

		runner := mock.NewMockRunner(ctrl)
		runner.EXPECT().LookPath("netplan").Return(true)

		be, err := Detect(Paths{InterfacesFile: "/etc/network/interfaces", NetplanDir: dir}, mock.NewMockFileManager(ctrl), runner)
		require.NoError(t, err)
		assert.Equal(t, "netplan", be.Name())
		assert.Equal(t, first, be.ConfigPath())
	})

	t.Run("NetplanBinaryWithoutConfigFallsThrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		runner := mock.NewMockRunner(ctrl)
		runner.EXPECT().LookPath("netplan").Return(true)
		runner.EXPECT().LookPath("ifreload").Return(true)

		fileMgr := mock.NewMockFileManager(ctrl)
		fileMgr.EXPECT().FileExists("/etc/network/interfaces").Return(true)

		be, err := Detect(Paths{InterfacesFile: "/etc/network/interfaces", NetplanDir: t.TempDir()}, fileMgr, runner)
		require.NoError(t, err)
		assert.Equal(t, "ifupdown2", be.Name())
	})

	t.Run("LegacyIfupdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		runner := mock.NewMockRunner(ctrl)
		runner.EXPECT().LookPath("netplan").Return(false)
		runner.EXPECT().LookPath("ifreload").Return(false)

		fileMgr := mock.NewMockFileManager(ctrl)
		fileMgr.EXPECT().FileExists("/etc/network/interfaces").Return(true)

		be, err := Detect(Paths{InterfacesFile: "/etc/network/interfaces", NetplanDir: "/nonexistent"}, fileMgr, runner)
		require.NoError(t, err)
		assert.Equal(t, "ifupdown", be.Name())
		assert.False(t, be.SupportsReload())
	})

	t.Run("NothingFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		runner := mock.NewMockRunner(ctrl)
		runner.EXPECT().LookPath("netplan").Return(false)

		fileMgr := mock.NewMockFileManager(ctrl)
		fileMgr.EXPECT().FileExists("/etc/network/interfaces").Return(false)

		_, err := Detect(Paths{InterfacesFile: "/etc/network/interfaces", NetplanDir: "/nonexistent"}, fileMgr, runner)
		var pre *types.PreconditionError
		require.ErrorAs(t, err, &pre)
	})
}
