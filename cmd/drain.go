package cmd

import (
	"context"
	"os"

	"github.com/jamsub/sunder/internal/adapter/hostctl"
	"github.com/jamsub/sunder/internal/adapter/hypervisor"
	"github.com/jamsub/sunder/internal/adapter/infrastructure/execx"
	"github.com/jamsub/sunder/internal/pkg/config"
	"github.com/jamsub/sunder/internal/pkg/logging"
	"github.com/jamsub/sunder/internal/pkg/ui"
	"github.com/jamsub/sunder/internal/workflow"

	"github.com/spf13/cobra"
)

var (
	drainConfigFlag  string
	drainTimeoutFlag int
	drainPollFlag    int
)

var drainCmd = &cobra.Command{
	Use:   "drain",
	Short: "Gracefully stop all running VMs, then offer shutdown or reboot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(drainConfigFlag)
		if err != nil {
			return err
		}
		if drainTimeoutFlag > 0 {
			cfg.Drain.TimeoutSeconds = drainTimeoutFlag
		}
		if drainPollFlag > 0 {
			cfg.Drain.PollIntervalSeconds = drainPollFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logging.InitLogger(cfg.Logging)

		runner := execx.NewRunnerAdapter()

		deps := workflow.Deps{
			Config:     cfg,
			Runner:     runner,
			Hypervisor: hypervisor.NewQMAdapter(runner),
			HostCtl:    hostctl.NewControllerAdapter(runner),
			Prompter:   ui.NewConsolePrompter(),
			Out:        os.Stdout,
		}

		return workflow.DrainAndAct(context.Background(), deps)
	},
}

func init() {
	drainCmd.Flags().StringVarP(&drainConfigFlag, "config", "f", "", "Path to config file (YAML)")
	drainCmd.Flags().IntVar(&drainTimeoutFlag, "timeout", 0, "Per-VM graceful shutdown timeout in seconds")
	drainCmd.Flags().IntVar(&drainPollFlag, "poll-interval", 0, "Status poll interval in seconds")
	rootCmd.AddCommand(drainCmd)
}
