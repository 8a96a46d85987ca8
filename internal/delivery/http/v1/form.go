package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps multipart file reads at 10 MB
const maxUploadSize = 10 << 20

// readFormFile reads an optional multipart file field into memory.
// A missing field is not an error; the caller checks for empty data.
func readFormFile(c *gin.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil, nil
		}
		return "", nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	// One byte past the cap distinguishes an at-limit file from an oversized
	// one; a truncated upload must never reach storage.
	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return "", nil, err
	}
	if len(data) > maxUploadSize {
		return "", nil, fmt.Errorf("file %s exceeds the %d MB upload limit", fileHeader.Filename, maxUploadSize>>20)
	}
	return fileHeader.Filename, data, nil
}
