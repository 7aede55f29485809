package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"timetable-manager/core/config"
	"timetable-manager/core/database"
	"timetable-manager/core/liss"
	"timetable-manager/core/logger"
	"timetable-manager/core/storage"
	"timetable-manager/feature/belltimes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fetchOutput   string
	fetchPublish  bool
	fetchTestOnly bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and decode bell times from the LISS endpoint",
	Long: `Fetch the bell-times export from the configured LISS endpoint, decode
it, validate the result, and write bell_times.json.

Examples:
  # Fetch into the configured output directory
  timetable-manager fetch

  # Fetch and publish the artifact to object storage
  timetable-manager fetch --publish

  # Only verify connectivity and list available structures
  timetable-manager fetch --test-only`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchOutput, "output", "bell_times.json", "Output file name (relative to the output directory)")
	fetchCmd.Flags().BoolVar(&fetchPublish, "publish", false, "Publish the artifact to object storage")
	fetchCmd.Flags().BoolVar(&fetchTestOnly, "test-only", false, "Only test the connection, do not fetch bell times")

	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client, err := liss.NewClient(cfg.Liss, l)
	if err != nil {
		return err
	}

	if fetchTestOnly {
		greeting, err := client.Hello(ctx)
		if err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
		l.Info("Connection test successful", zap.String("greeting", greeting))

		structures, err := client.TimetableStructures(ctx)
		if err != nil {
			l.Warn("Could not list timetable structures", zap.Error(err))
			return nil
		}
		l.Info("Available timetable structures", zap.Strings("structures", structures))
		return nil
	}

	// Optional collaborators: a missing audit DB or storage endpoint only
	// disables the corresponding step.
	var runlog *database.RunLog
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional audit database unavailable", zap.Error(err))
	} else if runlog, err = database.NewRunLog(db); err != nil {
		l.Warn("Could not prepare run log", zap.Error(err))
		runlog = nil
	}

	var store storage.Client
	if fetchPublish {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	svc := belltimes.NewService(client, store, cfg.Storage.Bucket, runlog,
		cfg.Liss.School, cfg.Liss.Structure, l)

	res, err := svc.Generate(ctx)
	if err != nil {
		return err
	}
	l.Info("Validation result", zap.String("result", res.Validation))

	outPath := filepath.Join(cfg.Server.OutputDir, fetchOutput)
	if err := res.Artifact.Save(outPath); err != nil {
		return err
	}
	l.Info("Bell times saved",
		zap.String("file", outPath),
		zap.Int("entries", len(res.Artifact.BellTimes)))

	if fetchPublish {
		if err := svc.Publish(ctx, res.Artifact, fetchOutput); err != nil {
			return err
		}
	}

	return nil
}
