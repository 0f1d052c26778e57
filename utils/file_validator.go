package utils

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// ImageValidator checks uploads before they are stored. Both the declared content type and
// the sniffed one must be images.
type ImageValidator struct {
	maxSize int64
}

func NewImageValidator(maxSizeMB int) *ImageValidator {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &ImageValidator{maxSize: int64(maxSizeMB) << 20}
}

func (v *ImageValidator) MaxSize() int64 { return v.maxSize }

// ValidateImage returns the detected content type.
func (v *ImageValidator) ValidateImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > v.maxSize {
		return "", fmt.Errorf("file size must be less than %dMB", v.maxSize>>20)
	}

	declared := fileHeader.Header.Get("Content-Type")
	if declared == "" {
		declared = mime.TypeByExtension(strings.ToLower(filepath.Ext(fileHeader.Filename)))
	}
	if !strings.HasPrefix(strings.ToLower(declared), "image/") {
		return "", fmt.Errorf("file must be an image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil || n == 0 {
		return "", fmt.Errorf("failed to read file header")
	}

	detected := strings.ToLower(http.DetectContentType(buffer[:n]))
	if !strings.HasPrefix(detected, "image/") {
		return "", fmt.Errorf("file must be an image")
	}
	return detected, nil
}
