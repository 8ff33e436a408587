package history

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository reads and writes search history.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&SearchRecord{}); err != nil {
		return fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return nil
}

// Create inserts a record.
func (r *Repository) Create(ctx context.Context, rec *SearchRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert search record: %w", err)
	}
	return nil
}

// Recent returns the newest records first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]SearchRecord, error) {
	var out []SearchRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list search records: %w", err)
	}
	return out, nil
}
