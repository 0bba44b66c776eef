package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"anima/internal/models"
	"anima/internal/repository"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	repo *repository.ConfigRepository
}

func NewConfigHandler(repo *repository.ConfigRepository) *ConfigHandler {
	return &ConfigHandler{repo: repo}
}

// ListPublic hydrates the public site's settings in one round trip. Fails
// open to an empty list like the other public content reads.
func (h *ConfigHandler) ListPublic(c *gin.Context) {
	entries, err := h.repo.GetAll()
	if err != nil {
		log.Printf("[config] public list failed: %v", err)
		c.JSON(http.StatusOK, []models.ConfigEntry{})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ConfigHandler) ListAdmin(c *gin.Context) {
	entries, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type upsertConfigRequest struct {
	Key   string          `json:"key" binding:"required,max=100"`
	Value json.RawMessage `json:"value" binding:"required"`
}

// Upsert stores any JSON shape under the key; the owning admin form is
// responsible for validating what it writes.
func (h *ConfigHandler) Upsert(c *gin.Context) {
	var req upsertConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.repo.Set(req.Key, req.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete removes a key; removing an absent key still reports success.
func (h *ConfigHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("key")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MergeSectionColors updates one section's style inside the section_colors
// document without the client resending the whole map. The style shape is
// validated here, as the typed accessor for this known key.
func (h *ConfigHandler) MergeSectionColors(c *gin.Context) {
	section := c.Param("section")
	if section == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section required"})
		return
	}
	var style models.SectionStyle
	if err := c.ShouldBindJSON(&style); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	raw, err := json.Marshal(style)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	entry, err := h.repo.MergeSectionStyle(section, raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
