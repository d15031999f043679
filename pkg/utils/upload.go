package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// SaveUploadedImage stores an uploaded image under dir and returns the
// generated filename. Only png and jpeg files are accepted.
func SaveUploadedImage(ctx *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", errors.New("unsupported image type, expected png or jpeg")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload dir: %w", err)
	}
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := ctx.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return filename, nil
}
