package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

// valueRow scans the value column; datatypes.JSON accepts both the []byte and
// string forms drivers return for text columns.
type valueRow struct {
	Value datatypes.JSON
}

// GormStore keeps every key as one row of kv_entries.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}

	// Only the document is read back; updated_at is bookkeeping for operators.
	var row valueRow
	err := s.db.WithContext(ctx).
		Model(&models.KVEntryModel{}).
		Select("value").
		Where(keyIs(key)).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load key %s: %w", key, err)
	}
	return true, decode(key, row.Value, dest)
}

func (s *GormStore) Set(ctx context.Context, key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}

	entry := models.KVEntryModel{
		Key:       key,
		Value:     string(data),
		UpdatedAt: biztime.NowUTC(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to store key %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.db.WithContext(ctx).Where(keyIs(key)).Delete(&models.KVEntryModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func keyIs(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}
