package upload_test

import (
	"testing"

	"go-hrms-backend/pkg/upload"

	"github.com/stretchr/testify/assert"
)

func TestValidateDocumentMagicBytes(t *testing.T) {
	assert.NoError(t, upload.ValidateDocument("resume.pdf", []byte("%PDF-1.7 content")))

	// renamed executable must not pass as pdf
	err := upload.ValidateDocument("resume.pdf", []byte{0x4D, 0x5A, 0x90, 0x00})
	assert.ErrorIs(t, err, upload.ErrContentMismatch)

	err = upload.ValidateDocument("malware.exe", []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, upload.ErrExtensionNotAllowed)
}

func TestValidateImageRejectsPDF(t *testing.T) {
	err := upload.ValidateImage("doc.pdf", []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, upload.ErrExtensionNotAllowed)

	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, 1, 2, 3)
	assert.NoError(t, upload.ValidateImage("avatar.png", png))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", upload.ContentType("resume.PDF"))
	assert.Equal(t, "image/png", upload.ContentType("a.png"))
	assert.Equal(t, "application/octet-stream", upload.ContentType("a.bin"))
}
