package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GenerationRun is one audit row per generation attempt: what the upstream
// API answered, which range was covered, and what validation said.
type GenerationRun struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	ResponseCode int       `json:"response_code"`
	RangeStart   string    `gorm:"size:64" json:"range_start"`
	RangeEnd     string    `gorm:"size:64" json:"range_end"`
	Validation   string    `gorm:"size:512" json:"validation"`
}

// RunLog records generation runs in the audit database.
type RunLog struct {
	db *gorm.DB
}

// NewRunLog migrates the generation_runs table and returns a recorder.
func NewRunLog(db *gorm.DB) (*RunLog, error) {
	if err := db.AutoMigrate(&GenerationRun{}); err != nil {
		return nil, fmt.Errorf("failed to migrate generation run table: %w", err)
	}
	return &RunLog{db: db}, nil
}

// Record appends one run to the audit log.
func (l *RunLog) Record(ctx context.Context, run *GenerationRun) error {
	if err := l.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record generation run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (l *RunLog) Recent(ctx context.Context, limit int) ([]GenerationRun, error) {
	var runs []GenerationRun
	err := l.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load generation runs: %w", err)
	}
	return runs, nil
}
