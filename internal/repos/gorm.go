package repos

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petuhovskiy/prize-wheel/internal/models"
)

// GormStore keeps documents in the "kv" table of a gorm database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the kv table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	err := db.AutoMigrate(&models.KeyValue{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &GormStore{
		db: db,
	}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var rows []models.KeyValue
	err := s.db.
		WithContext(ctx).
		Where("key = ?", key).
		Limit(1).
		Find(&rows).
		Error
	if err != nil {
		return "", false, err
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value string) error {
	row := models.KeyValue{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return s.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).
		Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.
		WithContext(ctx).
		Where("key = ?", key).
		Delete(&models.KeyValue{}).
		Error
}
