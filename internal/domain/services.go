package domain

import "context"

// Notifier sends transactional email. At most one attachment is ever needed;
// empty attachmentName means none. Implemented by pkg/email.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, text, html, attachmentName, attachmentURL string) error
}

// FileStore uploads a document and returns its durable URL.
// Implemented by pkg/storage.
type FileStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
}

// TextGenerator produces free-text completions. Implemented by pkg/ai.
type TextGenerator interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// ResumeReader extracts plain text from a stored PDF resume.
// Implemented by pkg/pdftext.
type ResumeReader interface {
	Extract(ctx context.Context, pdfURL string) (string, error)
}

// ScreeningUsecase produces the resume/vacancy alignment score. The raw model
// text is returned untouched; there is no caching and no fallback heuristic.
type ScreeningUsecase interface {
	CompareResume(ctx context.Context, resumeURL, vacancyDescription string) (string, error)
}

// DashboardStats are the counters behind the HR dashboard cards
type DashboardStats struct {
	Employees           int64 `json:"employees"`
	Candidates          int64 `json:"candidates"`
	Vacancies           int64 `json:"vacancies"`
	PendingLetters      int64 `json:"pendingLetters"`
	ScheduledInterviews int64 `json:"scheduledInterviews"`
}

// DashboardUsecase aggregates the dashboard counters
type DashboardUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
