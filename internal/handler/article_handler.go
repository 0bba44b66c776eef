package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"anima/internal/models"
	"anima/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ArticleHandler layers the publish lifecycle, slug reads and the featured
// strip on top of the shared content handler.
type ArticleHandler struct {
	*ContentHandler[models.Article]
	articles *repository.ArticleRepository
}

func NewArticleHandler(articles *repository.ArticleRepository, columns map[string]string) *ArticleHandler {
	return &ArticleHandler{
		ContentHandler: NewContentHandler(articles.OrderedRepository, columns),
		articles:       articles,
	}
}

// GetBySlug serves one published article to the public site.
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	a, err := h.articles.GetBySlug(c.Param("slug"), true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListFeatured serves the homepage highlight strip. Fails open like the
// other public content reads.
func (h *ArticleHandler) ListFeatured(c *gin.Context) {
	list, err := h.articles.Featured()
	if err != nil {
		log.Printf("[articles] featured list failed: %v", err)
		c.JSON(http.StatusOK, []models.Article{})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ArticleHandler) Publish(c *gin.Context) {
	h.transition(c, h.articles.Publish)
}

func (h *ArticleHandler) Unpublish(c *gin.Context) {
	h.transition(c, h.articles.Unpublish)
}

func (h *ArticleHandler) transition(c *gin.Context, op func(uint) (*models.Article, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	a, err := op(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, a)
}
