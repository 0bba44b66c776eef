package repository

import (
	"encoding/json"
	"errors"

	"anima/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigRepository is the generic key/value settings store. Values are raw
// JSON and are not validated here; the admin form owning a key decides its
// shape. Concurrent writes to one key are last-write-wins.
type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Get returns (nil, nil) when the key does not exist; callers supply their
// own default.
func (r *ConfigRepository) Get(key string) (*models.ConfigEntry, error) {
	var e models.ConfigEntry
	if err := r.db.Where("`key` = ?", key).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *ConfigRepository) GetAll() ([]models.ConfigEntry, error) {
	var list []models.ConfigEntry
	err := r.db.Order("`key` ASC").Find(&list).Error
	return list, err
}

// Set upserts: insert the key or overwrite its value and refresh updated_at.
func (r *ConfigRepository) Set(key string, value json.RawMessage) (*models.ConfigEntry, error) {
	if err := upsertEntry(r.db, key, value); err != nil {
		return nil, err
	}
	return r.Get(key)
}

// Delete removes the key; deleting an absent key is success.
func (r *ConfigRepository) Delete(key string) error {
	return r.db.Where("`key` = ?", key).Delete(&models.ConfigEntry{}).Error
}

// MergeSectionStyle rewrites one section inside the section_colors document.
// The read-merge-write runs in a transaction so two single-section edits
// through this path cannot drop each other.
func (r *ConfigRepository) MergeSectionStyle(section string, style json.RawMessage) (*models.ConfigEntry, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		sections := map[string]json.RawMessage{}
		var e models.ConfigEntry
		err := tx.Where("`key` = ?", models.SectionColorsKey).First(&e).Error
		if err == nil && len(e.Value) > 0 {
			if err := json.Unmarshal(e.Value, &sections); err != nil {
				return err
			}
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		sections[section] = style
		merged, err := json.Marshal(sections)
		if err != nil {
			return err
		}
		return upsertEntry(tx, models.SectionColorsKey, merged)
	})
	if err != nil {
		return nil, err
	}
	return r.Get(models.SectionColorsKey)
}

func upsertEntry(db *gorm.DB, key string, value json.RawMessage) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.ConfigEntry{Key: key, Value: value}).Error
}
