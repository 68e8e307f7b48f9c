package media

import (
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
)

const (
	MinFileSize = 1
	MaxFileSize = 10 * 1024 * 1024 // 10 MB
)

var AllowedMimeTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"application/pdf": true,
	"text/markdown":   true,
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[mimeType]
}

func IsImage(mimeType string) bool {
	return mimeType == "image/png" || mimeType == "image/jpeg" || mimeType == "image/webp"
}

func IsPdf(mimeType string) bool {
	return mimeType == "application/pdf"
}

func MimeTypeToExtension(mimeType string) (string, error) {
	switch mimeType {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/webp":
		return ".webp", nil
	case "application/pdf":
		return ".pdf", nil
	case "text/markdown":
		return ".md", nil
	default:
		return "", fmt.Errorf("no extension known for mime-type %q", mimeType)
	}
}

// DetectMimeType sniffs the content and falls back to the filename extension
// for types the stdlib sniffer cannot distinguish (markdown reads as plain
// text, and an empty prefix reads as octet-stream).
func DetectMimeType(filename string, data []byte) string {
	detected := http.DetectContentType(data)
	base, _, err := mime.ParseMediaType(detected)
	if err != nil {
		base = detected
	}

	if base == "text/plain" || base == "application/octet-stream" {
		switch strings.ToLower(path.Ext(filename)) {
		case ".md", ".markdown":
			return "text/markdown"
		case ".pdf":
			return "application/pdf"
		}
	}
	return base
}

// ValidateUpload enforces the local size and mime-type constraints. It must
// pass before any storage or database call is attempted.
func ValidateUpload(sizeBytes int64, mimeType string) error {
	if sizeBytes < MinFileSize {
		return ErrEmptyFile
	}
	if sizeBytes > MaxFileSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, sizeBytes, MaxFileSize)
	}
	if !IsMimeTypeAllowed(mimeType) {
		return fmt.Errorf("%w: %q", ErrMimeNotAllowed, mimeType)
	}
	return nil
}
