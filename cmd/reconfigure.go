package cmd

import (
	"context"
	"os"

	"github.com/jamsub/sunder/internal/adapter/backend"
	"github.com/jamsub/sunder/internal/adapter/cluster"
	"github.com/jamsub/sunder/internal/adapter/hostctl"
	"github.com/jamsub/sunder/internal/adapter/hypervisor"
	"github.com/jamsub/sunder/internal/adapter/infrastructure/execx"
	"github.com/jamsub/sunder/internal/adapter/infrastructure/file"
	"github.com/jamsub/sunder/internal/adapter/infrastructure/network"
	"github.com/jamsub/sunder/internal/pkg/config"
	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/pkg/ui"
	"github.com/jamsub/sunder/internal/workflow"

	"github.com/spf13/cobra"
)

var (
	configFlag    string
	skipDrainFlag bool
	backupDirFlag string
)

var reconfigureCmd = &cobra.Command{
	Use:   "reconfigure",
	Short: "Change the host IP address with backup, rollback and VM drain",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if backupDirFlag != "" {
			cfg.Paths.BackupRoot = backupDirFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logging.InitLogger(cfg.Logging)

		fileMgr := file.NewManagerAdapter()
		runner := execx.NewRunnerAdapter()

		be, err := backend.Detect(backend.Paths{
			InterfacesFile: cfg.Paths.InterfacesFile,
			NetplanDir:     cfg.Paths.NetplanDir,
		}, fileMgr, runner)
		if err != nil {
			return err
		}

		deps := workflow.Deps{
			Config:     cfg,
			Backend:    be,
			FileMgr:    fileMgr,
			NetMgr:     network.NewManagerAdapter(),
			Runner:     runner,
			Hypervisor: hypervisor.NewQMAdapter(runner),
			HostCtl:    hostctl.NewControllerAdapter(runner),
			Cluster:    cluster.NewCorosyncProbe(cfg.Paths.CorosyncConf, fileMgr),
			Prompter:   ui.NewConsolePrompter(),
			Out:        os.Stdout,
			SkipDrain:  skipDrainFlag,
		}

		return workflow.Run(context.Background(), deps)
	},
}

func init() {
	reconfigureCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	reconfigureCmd.Flags().BoolVar(&skipDrainFlag, "skip-drain", false, "Leave guest VMs running after apply")
	reconfigureCmd.Flags().StringVar(&backupDirFlag, "backup-dir", "", "Override the backup directory")
	rootCmd.AddCommand(reconfigureCmd)
}
