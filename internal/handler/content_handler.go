package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"anima/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// ContentHandler is the one HTTP surface behind every ordered content type.
// It is instantiated per resource with its repository and the whitelist of
// patchable fields (JSON name -> database column); anything outside the
// whitelist is dropped from partial updates.
type ContentHandler[T any] struct {
	repo    *repository.OrderedRepository[T]
	columns map[string]string
}

func NewContentHandler[T any](repo *repository.OrderedRepository[T], columns map[string]string) *ContentHandler[T] {
	return &ContentHandler[T]{repo: repo, columns: columns}
}

// ListPublic returns the visible rows in display order. Content reads fail
// open: on a store error the public site gets an empty collection instead
// of an error page.
func (h *ContentHandler[T]) ListPublic(c *gin.Context) {
	items, err := h.repo.ListVisible()
	if err != nil {
		log.Printf("[content] public list failed: %v", err)
		c.JSON(http.StatusOK, []T{})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAdmin returns every row, drafts and hidden items included.
func (h *ContentHandler[T]) ListAdmin(c *gin.Context) {
	items, err := h.repo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create accepts only whitelisted fields, like Update: the body is
// filtered before binding so clients cannot inject id, timestamps or, for
// articles, is_published — drafts go public through the publish endpoint
// only. Supplied columns are passed through so an explicit false on a
// visibility flag is stored rather than losing to the column default.
func (h *ContentHandler[T]) Create(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected a JSON object"})
		return
	}
	filtered := make(map[string]any, len(body))
	supplied := make([]string, 0, len(body))
	for field, column := range h.columns {
		if v, ok := body[field]; ok {
			filtered[field] = v
			supplied = append(supplied, column)
		}
	}
	clean, err := json.Marshal(filtered)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	item := new(T)
	if err := binding.JSON.BindBody(clean, item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.repo.Create(item, supplied...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T]) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	columns := map[string]any{}
	for field, column := range h.columns {
		if v, ok := body[field]; ok {
			columns[column] = v
		}
	}
	item, err := h.repo.Update(uint(id), columns)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete is idempotent: deleting an id that never existed still reports
// success.
func (h *ContentHandler[T]) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reorder applies a batch of {id, order} assignments and returns the full
// re-sorted collection.
func (h *ContentHandler[T]) Reorder(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	pairs, err := decodeReorderEnvelope(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := h.repo.Reorder(pairs)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyReorder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reorder failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// decodeReorderEnvelope accepts the three wire shapes clients have sent
// over time: a bare array (canonical), {"items":[...]} and {"value":[...]}.
func decodeReorderEnvelope(data []byte) ([]repository.OrderPair, error) {
	var pairs []repository.OrderPair
	if err := json.Unmarshal(data, &pairs); err == nil {
		return pairs, nil
	}
	var wrapped struct {
		Items []repository.OrderPair `json:"items"`
		Value []repository.OrderPair `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Items != nil {
			return wrapped.Items, nil
		}
		if wrapped.Value != nil {
			return wrapped.Value, nil
		}
	}
	return nil, errors.New("expected an array of {id, order} pairs")
}
