package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// UploadFile сохраняет фото машины в uploadDir/<гггг>/<мм>/<дд>/<uuid>.<ext>
func UploadFile(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			respond(c, http.StatusBadRequest, "File not found", nil)
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExt[ext] {
			respond(c, http.StatusBadRequest, "Unsupported file type", nil)
			return
		}
		newFileName := uuid.New().String() + ext

		datePath := time.Now().Format("2006/01/02")
		dateDir := filepath.Join(uploadDir, filepath.FromSlash(datePath))
		if err := os.MkdirAll(dateDir, 0o755); err != nil {
			respondError(c, err)
			return
		}

		if err := c.SaveUploadedFile(file, filepath.Join(dateDir, newFileName)); err != nil {
			respondError(c, err)
			return
		}

		respond(c, http.StatusOK, "", gin.H{"url": fmt.Sprintf("/uploads/%s/%s", datePath, newFileName)})
	}
}
