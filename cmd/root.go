package cmd

import (
	"fmt"
	"os"

	"timetable-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "timetable-manager",
	Short: "School Timetable Kiosk data pipeline",
	Long: `Timetable Manager fetches, decodes, validates and reconciles the
school timetable exports behind the kiosk display, and serves the
generated artifacts to kiosk hosts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard logger in console format; debug level
		// selects ISO8601 timestamps over epoch.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
