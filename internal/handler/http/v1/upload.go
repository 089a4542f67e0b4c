package v1

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// @Summary Upload an incident image
// @Description Store an image and return the path to put into image_path of an incident.
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (png, jpg, jpeg, gif)"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} map[string]string "Missing file or unsupported type"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /upload [post]
func (h *Handler) uploadImage(c *gin.Context) {
	log := h.logger.WithField("method", "uploadImage")

	file, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("No file in request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	base := filepath.Base(file.Filename)
	ext := strings.ToLower(filepath.Ext(base))
	if !allowedImageExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}
	if file.Size > h.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	name := uuid.New().String() + "_" + base
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		log.WithError(err).Error("Failed to save uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	log.WithField("file", name).Info("Image uploaded")
	c.JSON(http.StatusCreated, UploadResponse{
		Filename:  name,
		ImagePath: "/uploads/" + name,
	})
}
