package domain

import (
	"context"
	"time"
)

// Interview status constants
const (
	InterviewScheduled = "scheduled"
	InterviewCompleted = "completed"
	InterviewCancelled = "cancelled"
)

// Interview is a scheduled interview event linked to a candidate and vacancy
type Interview struct {
	ID              string    `json:"id"`
	CandidateID     string    `json:"candidate"`
	VacancyID       *string   `json:"vacancy,omitempty"`
	InterviewDate   time.Time `json:"interviewDate"`
	InterviewTime   string    `json:"interviewTime"`
	AdditionalNotes string    `json:"additionalNotes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// InterviewRepository defines data access for interviews
type InterviewRepository interface {
	Create(ctx context.Context, iv *Interview) error
	GetByID(ctx context.Context, id string) (*Interview, error)
	List(ctx context.Context) ([]Interview, error)
	UpdateStatus(ctx context.Context, id, status string) (*Interview, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// InterviewUsecase defines the scheduling workflow. Scheduling resolves the
// candidate's vacancy and notifies both the candidate and the hiring manager;
// overlapping slots are not checked.
type InterviewUsecase interface {
	Schedule(ctx context.Context, candidateID string, interviewDate time.Time, interviewTime, additionalNotes string) (*Interview, error)
	List(ctx context.Context) ([]Interview, error)
	GetByID(ctx context.Context, id string) (*Interview, error)
	UpdateStatus(ctx context.Context, id, status string) (*Interview, error)
	Cancel(ctx context.Context, id string) error
}
