package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a public contact-form submission. Stored first, then a
// notification email is sent best-effort.
type ContactMessage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Handled   bool           `gorm:"default:false;index" json:"handled"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
