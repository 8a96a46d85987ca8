package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"
	"go-hrms-backend/pkg/logger"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	personRepo    domain.PersonRepository
	vacancyRepo   domain.VacancyRepository
	emailRepo     domain.EmailHistoryRepository
	mailer        domain.Notifier
}

func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	personRepo domain.PersonRepository,
	vacancyRepo domain.VacancyRepository,
	emailRepo domain.EmailHistoryRepository,
	mailer domain.Notifier,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		personRepo:    personRepo,
		vacancyRepo:   vacancyRepo,
		emailRepo:     emailRepo,
		mailer:        mailer,
	}
}

// Schedule books an interview for a candidate. The candidate's vacancy is
// resolved to find the hiring manager; both candidate and manager are
// notified. Overlapping slots are not checked.
func (u *interviewUsecase) Schedule(ctx context.Context, candidateID string, interviewDate time.Time, interviewTime, additionalNotes string) (*domain.Interview, error) {
	if interviewTime == "" {
		return nil, apperror.BadRequest("Interview time is required")
	}

	person, err := u.personRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	if _, err := person.AsCandidate(); err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	if person.VacancyID == nil {
		return nil, apperror.NotFound("Candidate has no associated vacancy")
	}
	vacancy, err := u.vacancyRepo.GetByID(ctx, *person.VacancyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}

	iv := &domain.Interview{
		CandidateID:     candidateID,
		VacancyID:       &vacancy.ID,
		InterviewDate:   interviewDate,
		InterviewTime:   interviewTime,
		AdditionalNotes: additionalNotes,
		Status:          domain.InterviewScheduled,
	}
	if err := u.interviewRepo.Create(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	dateStr := interviewDate.Format("Monday, January 2, 2006")

	subject := fmt.Sprintf("Interview Scheduled - %s", vacancy.JobTitle)
	text := fmt.Sprintf("Dear %s,\n\nYour interview for the %s position has been scheduled on %s at %s.\n\n%s\n\nBest regards,\nHR Team", person.FullName, vacancy.JobTitle, dateStr, interviewTime, additionalNotes)
	html := fmt.Sprintf("<p>Dear %s,</p><p>Your interview for the <strong>%s</strong> position has been scheduled on <strong>%s</strong> at <strong>%s</strong>.</p><p>%s</p><p>Best regards,<br>HR Team</p>", person.FullName, vacancy.JobTitle, dateStr, interviewTime, additionalNotes)
	if err := u.mailer.SendEmail(ctx, person.Email, subject, text, html, "", ""); err != nil {
		return nil, apperror.Upstream("Failed to send interview email", err)
	}
	u.recordEmail(ctx, person.ID, subject, text)

	if vacancy.HiringManagerEmail != "" {
		mSubject := fmt.Sprintf("Interview Scheduled with %s - %s", person.FullName, vacancy.JobTitle)
		mText := fmt.Sprintf("Dear %s,\n\nAn interview with candidate %s for the %s position has been scheduled on %s at %s.\n\nBest regards,\nHR Team", vacancy.HiringManager, person.FullName, vacancy.JobTitle, dateStr, interviewTime)
		mHTML := fmt.Sprintf("<p>Dear %s,</p><p>An interview with candidate <strong>%s</strong> for the <strong>%s</strong> position has been scheduled on <strong>%s</strong> at <strong>%s</strong>.</p><p>Best regards,<br>HR Team</p>", vacancy.HiringManager, person.FullName, vacancy.JobTitle, dateStr, interviewTime)
		if err := u.mailer.SendEmail(ctx, vacancy.HiringManagerEmail, mSubject, mText, mHTML, "", ""); err != nil {
			return nil, apperror.Upstream("Failed to send interview email", err)
		}
	}

	return iv, nil
}

func (u *interviewUsecase) List(ctx context.Context) ([]domain.Interview, error) {
	interviews, err := u.interviewRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (u *interviewUsecase) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	iv, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, apperror.Internal(err)
	}
	return iv, nil
}

// UpdateStatus changes only the status field; other fields are immutable
// after scheduling.
func (u *interviewUsecase) UpdateStatus(ctx context.Context, id, status string) (*domain.Interview, error) {
	switch status {
	case domain.InterviewScheduled, domain.InterviewCompleted, domain.InterviewCancelled:
	default:
		return nil, apperror.BadRequest("Status must be scheduled, completed or cancelled")
	}

	iv, err := u.interviewRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, apperror.Internal(err)
	}
	return iv, nil
}

// Cancel removes the interview record entirely
func (u *interviewUsecase) Cancel(ctx context.Context, id string) error {
	if err := u.interviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *interviewUsecase) recordEmail(ctx context.Context, personID, subject, body string) {
	err := u.emailRepo.Record(ctx, &domain.EmailEntry{
		PersonID:  personID,
		Subject:   subject,
		Body:      body,
		Direction: domain.EmailSent,
	})
	if err != nil {
		logger.Log.Warn("failed to record email history", "person_id", personID, "error", err)
	}
}
