package models

import (
	"time"

	"gorm.io/gorm"
)

// The content types below share the ordered-resource contract: an integer
// sort_order (exposed as "order" in JSON), a visibility flag, and full
// CRUD + batch reorder. Gaps and duplicates in sort_order are allowed;
// display order is sort_order ASC with id ASC as tiebreak.

type Testimonial struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	AuthorName   string         `gorm:"size:100;not null" json:"author_name" binding:"required"`
	AuthorDetail string         `gorm:"size:150" json:"author_detail"`
	Quote        string         `gorm:"type:text;not null" json:"quote" binding:"required"`
	Rating       int            `gorm:"default:5" json:"rating" binding:"omitempty,min=1,max=5"`
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	SortOrder    int            `gorm:"default:0;index" json:"order"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Testimonial) TableName() string { return "testimonials" }

type FaqItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Question  string         `gorm:"size:512;not null" json:"question" binding:"required"`
	Answer    string         `gorm:"type:text;not null" json:"answer" binding:"required"`
	SortOrder int            `gorm:"default:0;index" json:"order"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FaqItem) TableName() string { return "faq_items" }

type Service struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:150;not null" json:"title" binding:"required"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `gorm:"size:100" json:"icon"`
	Duration    string         `gorm:"size:50" json:"duration"` // e.g. "50 min"
	PriceNote   string         `gorm:"size:100" json:"price_note"`
	SortOrder   int            `gorm:"default:0;index" json:"order"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Service) TableName() string { return "services" }

type PhotoCarouselItem struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ImageURL     string         `gorm:"size:512;not null" json:"image_url" binding:"required"`
	ThumbnailURL string         `gorm:"size:512" json:"thumbnail_url"`
	Caption      string         `gorm:"size:255" json:"caption"`
	SortOrder    int            `gorm:"default:0;index" json:"order"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PhotoCarouselItem) TableName() string { return "photo_carousel_items" }

type Specialty struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:150;not null" json:"name" binding:"required"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `gorm:"size:100" json:"icon"`
	SortOrder   int            `gorm:"default:0;index" json:"order"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Specialty) TableName() string { return "specialties" }

// CustomCode is an admin-managed HTML/JS snippet (analytics pixels, chat
// widgets) injected into the public pages at the configured placement.
type CustomCode struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name" binding:"required"`
	Code      string         `gorm:"type:text;not null" json:"code" binding:"required"`
	Placement string         `gorm:"size:10;default:'head'" json:"placement" binding:"omitempty,oneof=head body"`
	SortOrder int            `gorm:"default:0;index" json:"order"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CustomCode) TableName() string { return "custom_codes" }

type GalleryImage struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ImageURL     string         `gorm:"size:512;not null" json:"image_url" binding:"required"`
	ThumbnailURL string         `gorm:"size:512" json:"thumbnail_url"`
	AltText      string         `gorm:"size:255" json:"alt_text"`
	Caption      string         `gorm:"size:255" json:"caption"`
	SortOrder    int            `gorm:"default:0;index" json:"order"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GalleryImage) TableName() string { return "gallery_images" }
