package upload

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the file types this system accepts.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

var (
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
	ErrContentMismatch     = errors.New("file content does not match extension")
)

// ValidateDocument checks that the filename carries a whitelisted extension
// and that the content starts with the matching magic bytes, so a renamed
// binary cannot masquerade as a PDF or image.
func ValidateDocument(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	signatures, ok := magicBytes[ext]
	if !ok {
		return ErrExtensionNotAllowed
	}

	if len(data) < 4 {
		return ErrContentMismatch
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return nil
		}
	}
	return ErrContentMismatch
}

// ValidateImage restricts the file to image types (profile pictures).
func ValidateImage(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".pdf" {
		return ErrExtensionNotAllowed
	}
	return ValidateDocument(filename, data)
}

// ContentType returns the MIME type for a whitelisted extension, or
// application/octet-stream when unknown.
func ContentType(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
