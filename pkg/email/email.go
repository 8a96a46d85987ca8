package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/smtp"
	"path/filepath"
	"time"

	"go-hrms-backend/config"
)

// Attachment references a stored file to attach to an outgoing message.
// The file is fetched from its durable URL at send time, mirroring how the
// storage service is the source of truth for letter PDFs.
type Attachment struct {
	Filename string
	URL      string
}

// Message is a single outbound email.
type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Service sends emails via SMTP
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	client    *http.Client
}

// NewService creates an email service from SMTP configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured checks if the service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send delivers the message. Attachments are fetched from their URLs and
// embedded as base64 MIME parts. There is no retry: a transport failure is
// returned to the caller as-is.
func (s *Service) Send(ctx context.Context, msg Message) error {
	raw, err := s.buildMIME(ctx, msg)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendEmail is the notifier entry point used by the usecases: a single
// recipient and at most one attachment. The context bounds the attachment
// fetch; SMTP delivery itself uses the transport's own timeouts.
func (s *Service) SendEmail(ctx context.Context, to, subject, text, html, attachmentName, attachmentURL string) error {
	msg := Message{
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}
	if attachmentName != "" && attachmentURL != "" {
		msg.Attachments = append(msg.Attachments, Attachment{
			Filename: attachmentName,
			URL:      attachmentURL,
		})
	}
	return s.Send(ctx, msg)
}

func (s *Service) buildMIME(ctx context.Context, msg Message) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", s.fromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		if msg.HTML != "" {
			buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
			buf.WriteString(msg.HTML)
		} else {
			buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
			buf.WriteString(msg.Text)
		}
		return buf.Bytes(), nil
	}

	const boundary = "hrms-mail-boundary"
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", boundary)

	// Body part
	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	if msg.HTML != "" {
		buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.HTML)
	} else {
		buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.Text)
	}
	buf.WriteString("\r\n")

	// Attachment parts
	for _, att := range msg.Attachments {
		data, err := s.fetch(ctx, att.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch attachment %s: %w", att.Filename, err)
		}

		contentType := mime.TypeByExtension(filepath.Ext(att.Filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: %s\r\n", contentType)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", att.Filename)

		encoded := base64.StdEncoding.EncodeToString(data)
		// 76-char lines per RFC 2045
		for len(encoded) > 76 {
			buf.WriteString(encoded[:76])
			buf.WriteString("\r\n")
			encoded = encoded[76:]
		}
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	return buf.Bytes(), nil
}

func (s *Service) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
