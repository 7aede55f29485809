package cmd

import (
	"fmt"

	"timetable-manager/core/config"
	"timetable-manager/core/logger"
	"timetable-manager/core/reconcile"
	"timetable-manager/feature/belltimes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileReference    string
	reconcileCandidate    string
	reconcileMultiplicity bool
	reconcileMaxSamples   int
)

// reconcileCmd compares two bell-times exports and reports field mismatches.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a candidate bell-times export against a reference",
	Long: `Reconcile two bell-times files (JSON artifacts or raw tagged exports).

Entries are matched by day and period, the remaining fields are compared,
and a sample of the differences is reported. The command exits non-zero
when mismatched entries outnumber matching ones.

Examples:
  # Compare a freshly generated file against the published one
  timetable-manager reconcile --reference bell_times.json --candidate new_bell_times.json

  # Count repeated day/period entries instead of collapsing them
  timetable-manager reconcile --reference a.json --candidate b.json --multiplicity`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileReference, "reference", "", "Reference file (required)")
	reconcileCmd.Flags().StringVar(&reconcileCandidate, "candidate", "", "Candidate file (required)")
	reconcileCmd.Flags().BoolVar(&reconcileMultiplicity, "multiplicity", false, "Compare repeated day/period entries pairwise instead of last-one-wins")
	reconcileCmd.Flags().IntVar(&reconcileMaxSamples, "max-samples", reconcile.DefaultMaxDiffSamples, "Maximum number of difference samples to report")
	_ = reconcileCmd.MarkFlagRequired("reference")
	_ = reconcileCmd.MarkFlagRequired("candidate")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	reference, err := belltimes.LoadRecords(reconcileReference)
	if err != nil {
		return fmt.Errorf("failed to load reference: %w", err)
	}
	candidate, err := belltimes.LoadRecords(reconcileCandidate)
	if err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	res := reconcile.Compare(reference, candidate, reconcile.Options{
		MultiplicityAware: reconcileMultiplicity,
		MaxDiffSamples:    reconcileMaxSamples,
	})

	printReconcileReport(l, res)

	if res.EmptyInput {
		return fmt.Errorf("nothing to reconcile: both inputs are empty")
	}
	if !res.Success() {
		return fmt.Errorf("reconciliation failed: %d mismatches against %d matches", res.Mismatches, res.Matches)
	}
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, res *reconcile.Result) {
	l.Info("Reconciliation report",
		zap.Int("reference_only", len(res.ReferenceOnly)),
		zap.Int("candidate_only", len(res.CandidateOnly)),
		zap.Int("common", len(res.Common)),
		zap.Int("matches", res.Matches),
		zap.Int("mismatches", res.Mismatches),
		zap.String("match_rate", res.MatchRateString()),
	)

	for _, d := range res.Diffs {
		l.Info("Sample difference",
			zap.String("key", d.Key),
			zap.String("field", d.Field),
			zap.Any("reference", d.Reference),
			zap.Any("candidate", d.Candidate),
		)
	}
	if res.Mismatches > len(res.Diffs) && len(res.Diffs) > 0 {
		l.Info("Additional differences not shown", zap.Int("count", res.Mismatches-len(res.Diffs)))
	}
}
