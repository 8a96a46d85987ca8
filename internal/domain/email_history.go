package domain

import (
	"context"
	"time"
)

// Email direction constants
const (
	EmailSent     = "sent"
	EmailReceived = "received"
)

// EmailEntry records one email exchanged with a person. Recording is
// best-effort: a failed insert never fails the workflow that sent the email.
type EmailEntry struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"personId"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sentDate"`
	Direction string    `json:"direction"`
}

// EmailHistoryRepository defines data access for the email audit trail
type EmailHistoryRepository interface {
	Record(ctx context.Context, e *EmailEntry) error
	ListByPerson(ctx context.Context, personID string) ([]EmailEntry, error)
}
