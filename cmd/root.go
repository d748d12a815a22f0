package cmd

import (
	"fmt"
	"os"

	"focusdeck/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "focusdeck",
	Short: "FocusDeck Backend",
	Long: `FocusDeck is the backend for the FocusDeck productivity app.
It reconciles offline-queued mutations from the web client and the browser
extension (tasks, notes, site blocker, tab stashes) and serves soundscapes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI users expect readable console output, so force the console
		// encoder regardless of the configured log format.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
