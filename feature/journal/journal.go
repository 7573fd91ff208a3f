package journal

import (
	"context"
	"errors"
	"fmt"

	"gamedata-manager/feature/game"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the journal has no connection.
var ErrNoDatabase = errors.New("database connection is nil")

// Journal stores save records.
type Journal struct {
	db     *gorm.DB
	logger *zap.Logger
}

// New creates a journal on db.
func New(db *gorm.DB, logger *zap.Logger) (*Journal, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Journal{db: db, logger: logger}, nil
}

// Migrate creates or updates the save_records table.
func (j *Journal) Migrate() error {
	if err := j.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}

// RecordSave stores one save outcome.
func (j *Journal) RecordSave(ctx context.Context, rec game.SaveRecord) error {
	row := Record{
		SessionID: rec.SessionID,
		Version:   rec.Version.String(),
		File:      rec.File.String(),
		Path:      rec.Path,
		SavedAt:   rec.SavedAt,
	}
	if rec.Err != nil {
		row.Failed = true
		row.Error = rec.Err.Error()
	}

	if err := j.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record save of %s: %w", row.File, err)
	}
	j.logger.Debug("Recorded save", zap.String("file", row.File), zap.Bool("failed", row.Failed))
	return nil
}

// Recent returns the latest records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []Record
	if err := j.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	return rows, nil
}

// Session returns the records of one session in insertion order.
func (j *Journal) Session(ctx context.Context, sessionID string) ([]Record, error) {
	var rows []Record
	if err := j.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list session %s: %w", sessionID, err)
	}
	return rows, nil
}
