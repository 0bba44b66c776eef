package handler

import (
	"errors"
	"net/http"
	"strings"

	"anima/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	cloud  cloudinary.Client
	folder string
}

func NewUploadHandler(cloud cloudinary.Client, folder string) *UploadHandler {
	return &UploadHandler{cloud: cloud, folder: folder}
}

// Upload stores an image under the requested optimization profile and
// returns delivery URLs for the admin form to save on its resource.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	profile := c.PostForm("profile")
	if profile == "" {
		profile = cloudinary.DefaultProfile
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	url, thumb, err := h.cloud.UploadImage(c.Request.Context(), f, h.folder+"/"+profile, publicID, profile)
	if err != nil {
		switch {
		case errors.Is(err, cloudinary.ErrUnknownProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown profile"})
		case errors.Is(err, cloudinary.ErrUploadsDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "thumbnail_url": thumb, "public_id": publicID})
}
