package repository

import (
	"anima/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id uint) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&models.AdminUser{}).Where("id = ?", id).Update("password_hash", hash).Error
}
