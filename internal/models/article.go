package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is the one content type with a publish gate: rows start as drafts
// and only appear publicly after an explicit publish. PublishedAt records
// the first publish; unpublishing keeps it, so republishing an article does
// not move it.
type Article struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Slug          string         `gorm:"uniqueIndex;size:150;not null" json:"slug" binding:"required"`
	Title         string         `gorm:"size:255;not null" json:"title" binding:"required"`
	Excerpt       string         `gorm:"size:512" json:"excerpt"`
	Content       string         `gorm:"type:text" json:"content"`
	CoverImageURL string         `gorm:"size:512" json:"cover_image_url"`
	IsFeatured    bool           `gorm:"default:false;index" json:"is_featured"`
	IsPublished   bool           `gorm:"default:false;index" json:"is_published"`
	PublishedAt   *time.Time     `json:"published_at"`
	SortOrder     int            `gorm:"default:0;index" json:"order"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Article) TableName() string { return "articles" }
