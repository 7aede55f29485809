package cmd

import (
	"fmt"
	"strings"

	"timetable-manager/core/config"
	"timetable-manager/core/logger"
	"timetable-manager/core/validate"
	"timetable-manager/feature/belltimes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateInput string

// validateCmd runs the sanity checks against an existing bell-times file.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a bell-times file",
	Long: `Validate an existing bell-times file (JSON artifact or raw tagged
export) against the kiosk sanity checks: required fields present, day
numbers within the two-week cycle, and HH:MM start and end times.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateInput, "input", "bell_times.json", "File to validate")

	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	records, err := belltimes.LoadRecords(validateInput)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", validateInput, err)
	}

	result := validate.Check(records, validate.BellTimes())
	l.Info("Validation result",
		zap.String("file", validateInput),
		zap.Int("entries", len(records)),
		zap.String("result", result),
	)

	if strings.HasPrefix(result, "FAILED") {
		return fmt.Errorf("validation failed: %s", result)
	}
	return nil
}
