package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"anima/internal/models"
	"anima/internal/repository"
	"anima/pkg/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct {
	repo  *repository.ContactRepository
	mail  mailer.Mailer
	inbox string
}

func NewContactHandler(repo *repository.ContactRepository, mail mailer.Mailer, inbox string) *ContactHandler {
	return &ContactHandler{repo: repo, mail: mail, inbox: inbox}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Create stores the submission, then notifies the practice inbox
// best-effort; mail failures never fail the request.
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.repo.Create(&m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save message"})
		return
	}
	if h.inbox != "" {
		go func() {
			body := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s", m.Name, m.Email, m.Phone, m.Message)
			if err := h.mail.Send(h.inbox, "New contact form message from "+m.Name, body); err != nil {
				log.Printf("[contact] notification mail failed: %v", err)
			}
		}()
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ContactHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ContactHandler) MarkHandled(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	m, err := h.repo.MarkHandled(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, m)
}
