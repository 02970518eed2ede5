package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jamsub/sunder/internal/pkg/ui"
	"github.com/jamsub/sunder/internal/types"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sunder",
	Short: "sunder reconfigures a Proxmox/Ubuntu host IP and drains its VMs",
	Long: `sunder walks an operator through changing the IP address of a
Proxmox or Ubuntu host: it detects the active network backend, backs up
the configuration, stages and applies the change with rollback on
failure, and gracefully drains guest VMs before shutdown or reboot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Operator-declined confirmations exit 0; every
// fatal condition exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, types.ErrCancelled) {
			fmt.Println(ui.InfoMsg("aborted, nothing left to do"))
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}
