package v1

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func multipartContext(t *testing.T, field, filename string, data []byte) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		fw, err := w.CreateFormFile(field, filename)
		assert.NoError(t, err)
		_, err = fw.Write(data)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", &body)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())
	return c
}

func TestReadFormFileReturnsContent(t *testing.T) {
	c := multipartContext(t, "resume", "resume.pdf", []byte("%PDF-1.4 fake"))

	name, data, err := readFormFile(c, "resume")

	assert.NoError(t, err)
	assert.Equal(t, "resume.pdf", name)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestReadFormFileMissingFieldIsNotAnError(t *testing.T) {
	c := multipartContext(t, "resume", "", nil)

	name, data, err := readFormFile(c, "resume")

	assert.NoError(t, err)
	assert.Empty(t, name)
	assert.Nil(t, data)
}

func TestReadFormFileRejectsOversizedUpload(t *testing.T) {
	oversized := append([]byte("%PDF-1.4 "), bytes.Repeat([]byte("a"), maxUploadSize)...)
	c := multipartContext(t, "file", "letter.pdf", oversized)

	_, data, err := readFormFile(c, "file")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "upload limit")
	assert.Nil(t, data)
}

func TestReadFormFileAcceptsFileAtLimit(t *testing.T) {
	atLimit := bytes.Repeat([]byte("a"), maxUploadSize)
	c := multipartContext(t, "file", "letter.pdf", atLimit)

	_, data, err := readFormFile(c, "file")

	assert.NoError(t, err)
	assert.Len(t, data, maxUploadSize)
}
