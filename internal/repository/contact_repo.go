package repository

import (
	"anima/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(m *models.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *ContactRepository) List(limit, offset int) ([]models.ContactMessage, error) {
	var list []models.ContactMessage
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ContactRepository) MarkHandled(id uint) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&m).Update("handled", true).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
