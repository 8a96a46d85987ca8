package pdftext

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Extract fetches a PDF from its URL and returns its plain text.
// Extraction shells out to pdftotext (poppler-utils), which must be on PATH.
func Extract(ctx context.Context, pdfURL string) (string, error) {
	data, err := fetch(ctx, pdfURL)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(string(data[:min(8, len(data))]), "%PDF-") {
		return "", fmt.Errorf("document at %s is not a PDF", pdfURL)
	}

	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	tmp.Close()

	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", tmp.Name(), "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("PDF extraction requires 'pdftotext' (install poppler-utils): %w", err)
	}

	text := strings.TrimSpace(string(output))
	if text == "" {
		return "", fmt.Errorf("no text could be extracted from %s", pdfURL)
	}
	return text, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch PDF: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Extractor satisfies interfaces that want Extract as a method.
type Extractor struct{}

func (Extractor) Extract(ctx context.Context, pdfURL string) (string, error) {
	return Extract(ctx, pdfURL)
}
