package repository

import (
	"time"

	"anima/internal/models"

	"gorm.io/gorm"
)

// FeaturedLimit caps the homepage highlight strip.
const FeaturedLimit = 6

// ArticleRepository adds the publish lifecycle and slug lookups on top of
// the generic ordered store.
type ArticleRepository struct {
	*OrderedRepository[models.Article]
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{NewOrderedRepository[models.Article](db, "is_published")}
}

// GetBySlug looks an article up by slug. With publishedOnly, drafts behave
// as if they do not exist.
func (r *ArticleRepository) GetBySlug(slug string, publishedOnly bool) (*models.Article, error) {
	q := r.db.Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	var a models.Article
	if err := q.First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Publish makes the article public. published_at is set only on the
// draft -> published transition, so it always means "first published at";
// republishing does not move it.
func (r *ArticleRepository) Publish(id uint) (*models.Article, error) {
	var a models.Article
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	if !a.IsPublished {
		now := time.Now()
		updates := map[string]any{"is_published": true}
		if a.PublishedAt == nil {
			updates["published_at"] = now
		}
		if err := r.db.Model(&a).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := r.db.First(&a, id).Error; err != nil {
			return nil, err
		}
	}
	return &a, nil
}

// Unpublish flips the article back to draft. published_at is kept.
func (r *ArticleRepository) Unpublish(id uint) (*models.Article, error) {
	var a models.Article
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	if a.IsPublished {
		if err := r.db.Model(&a).Update("is_published", false).Error; err != nil {
			return nil, err
		}
		if err := r.db.First(&a, id).Error; err != nil {
			return nil, err
		}
	}
	return &a, nil
}

// Featured returns the published, featured articles for the homepage,
// capped at FeaturedLimit.
func (r *ArticleRepository) Featured() ([]models.Article, error) {
	var list []models.Article
	err := r.db.Where("is_featured = ? AND is_published = ?", true, true).
		Order("sort_order ASC, published_at DESC").
		Limit(FeaturedLimit).
		Find(&list).Error
	return list, err
}
