package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/nfnt/resize"
)

// UploadFile handles POST /api/admin/upload
// Saves the image under a slugged unique name and writes a 320px-wide JPEG
// thumbnail next to it for the storefront grid.
func (h *Handlers) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	uploadPath := "./uploads"
	if _, err := os.Stat(uploadPath); os.IsNotExist(err) {
		os.Mkdir(uploadPath, 0755)
	}

	ext := filepath.Ext(file.Filename)
	base := slug.Make(strings.TrimSuffix(filepath.Base(file.Filename), ext))
	newFilename := fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
	savePath := filepath.Join(uploadPath, newFilename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	resp := gin.H{
		"url": fmt.Sprintf("%s/uploads/%s", baseURL, newFilename),
	}

	// Thumbnail generation is best effort; non-image uploads just skip it.
	if thumbName, err := writeThumbnail(savePath, uploadPath, base); err == nil {
		resp["thumbnailUrl"] = fmt.Sprintf("%s/uploads/%s", baseURL, thumbName)
	}

	c.JSON(http.StatusOK, resp)
}

func writeThumbnail(srcPath, uploadPath, base string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", err
	}

	thumb := resize.Resize(320, 0, img, resize.Lanczos3)
	thumbName := fmt.Sprintf("%s-%s-thumb.jpg", base, uuid.New().String())

	out, err := os.Create(filepath.Join(uploadPath, thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return "", err
	}
	return thumbName, nil
}
