package belltimes

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"timetable-manager/core/database"
	"timetable-manager/core/decode"
	"timetable-manager/core/liss"
	"timetable-manager/core/reconcile"
	"timetable-manager/core/storage"
	"timetable-manager/core/validate"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Fetcher is the slice of the LISS client the service needs.
type Fetcher interface {
	BellTimes(ctx context.Context) (string, error)
}

// Service orchestrates the bell-times pipeline. The storage client and
// run log are optional; when nil the corresponding step is skipped.
type Service struct {
	fetcher Fetcher
	store   storage.Client
	bucket  string
	runlog  *database.RunLog
	logger  *zap.Logger

	school    string
	structure string
}

// NewService wires the pipeline dependencies.
func NewService(fetcher Fetcher, store storage.Client, bucket string, runlog *database.RunLog, school, structure string, logger *zap.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		store:     store,
		bucket:    bucket,
		runlog:    runlog,
		logger:    logger,
		school:    school,
		structure: structure,
	}
}

// GenerateResult is what one generation run produced.
type GenerateResult struct {
	Artifact   *Artifact
	Records    []*decode.Record
	Validation string
}

// Generate fetches the raw export, decodes it, and validates the decoded
// collection. A fetch failure is an error; decode and validation problems
// are not, they land in the Validation string and the audit row.
func (s *Service) Generate(ctx context.Context) (*GenerateResult, error) {
	text, err := s.fetcher.BellTimes(ctx)
	if err != nil {
		s.audit(ctx, 0, "N/A", "N/A", "FAILED - Generation failed")
		if errors.Is(err, liss.ErrNoData) {
			return nil, fmt.Errorf("endpoint returned no bell times: %w", err)
		}
		return nil, fmt.Errorf("failed to fetch bell times: %w", err)
	}

	records := decode.Decode(text)
	Normalize(records)
	s.logger.Info("Decoded bell times", zap.Int("entries", len(records)))

	validation := validate.Check(records, validate.BellTimes())

	entries := make([]BellTime, 0, len(records))
	for _, r := range records {
		entries = append(entries, FromRecord(r))
	}
	artifact := NewArtifact(entries, "LISS API", s.school, s.structure)

	rangeStart, rangeEnd := dayRange(records)
	s.audit(ctx, 200, rangeStart, rangeEnd, validation)

	return &GenerateResult{
		Artifact:   artifact,
		Records:    records,
		Validation: validation,
	}, nil
}

// Publish uploads the artifact JSON to the configured bucket.
func (s *Service) Publish(ctx context.Context, artifact *Artifact, objectName string) error {
	if s.store == nil {
		return fmt.Errorf("storage is not configured")
	}

	var buf bytes.Buffer
	if err := artifact.Write(&buf); err != nil {
		return err
	}

	_, err := s.store.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", objectName, err)
	}

	s.logger.Info("Published artifact",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
		zap.Int("bytes", buf.Len()))
	return nil
}

// Reconcile compares a candidate collection against a reference one.
func (s *Service) Reconcile(reference, candidate []*decode.Record, opts reconcile.Options) *reconcile.Result {
	res := reconcile.Compare(reference, candidate, opts)
	s.logger.Info("Reconciled bell times",
		zap.Int("reference_only", len(res.ReferenceOnly)),
		zap.Int("candidate_only", len(res.CandidateOnly)),
		zap.Int("common", len(res.Common)),
		zap.Int("matches", res.Matches),
		zap.Int("mismatches", res.Mismatches),
		zap.String("match_rate", res.MatchRateString()))
	return res
}

// audit best-effort records the run; a broken audit DB never fails the
// pipeline.
func (s *Service) audit(ctx context.Context, code int, rangeStart, rangeEnd, validation string) {
	if s.runlog == nil {
		return
	}
	err := s.runlog.Record(ctx, &database.GenerationRun{
		ResponseCode: code,
		RangeStart:   rangeStart,
		RangeEnd:     rangeEnd,
		Validation:   validation,
	})
	if err != nil {
		s.logger.Warn("Could not record generation run", zap.Error(err))
	}
}

// dayRange describes the span of cycle days in the collection.
func dayRange(records []*decode.Record) (string, string) {
	if len(records) == 0 {
		return "N/A", "N/A"
	}
	first, last := "", ""
	lo, hi := 0, 0
	for _, r := range records {
		n := r.Int("DayNumber")
		if first == "" || n < lo {
			first, lo = r.Text("DayName"), n
		}
		if last == "" || n > hi {
			last, hi = r.Text("DayName"), n
		}
	}
	return first, last
}
