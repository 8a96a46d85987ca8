package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"
	"go-hrms-backend/pkg/logger"
	"go-hrms-backend/pkg/upload"
)

type letterUsecase struct {
	letterRepo domain.LetterRepository
	personRepo domain.PersonRepository
	emailRepo  domain.EmailHistoryRepository
	store      domain.FileStore
	mailer     domain.Notifier
}

func NewLetterUsecase(
	letterRepo domain.LetterRepository,
	personRepo domain.PersonRepository,
	emailRepo domain.EmailHistoryRepository,
	store domain.FileStore,
	mailer domain.Notifier,
) domain.LetterUsecase {
	return &letterUsecase{
		letterRepo: letterRepo,
		personRepo: personRepo,
		emailRepo:  emailRepo,
		store:      store,
		mailer:     mailer,
	}
}

// Issue dispatches a generated letter file to an employee. The upload happens
// before the employee lookup and the already-sent check, so a conflicting or
// misaddressed request still consumes a storage call; the original flow
// ordered it this way and callers depend on the resulting 400/404, not on the
// storage state.
func (u *letterUsecase) Issue(ctx context.Context, employeeID string, letterType domain.LetterType, filename string, data []byte) (*domain.Letter, error) {
	if !letterType.Valid() {
		return nil, apperror.BadRequest("Letter type must be offer or appointment")
	}
	if len(data) == 0 {
		return nil, apperror.BadRequest("Letter file is required")
	}
	if err := upload.ValidateDocument(filename, data); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	fileURL, err := u.store.Upload(ctx, "letters", filename, upload.ContentType(filename), data)
	if err != nil {
		return nil, apperror.Upstream("Failed to upload letter", err)
	}

	person, err := u.personRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, apperror.Internal(err)
	}
	if _, err := person.AsEmployee(); err != nil {
		return nil, apperror.NotFound("Employee not found")
	}

	letter, err := u.findOrCreate(ctx, employeeID, letterType)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if letter.IsSent {
		return nil, apperror.Conflict("Letter has already been sent.")
	}

	now := time.Now()
	letter.FileURL = fileURL
	letter.IsSent = true
	letter.SentAt = &now
	if err := u.letterRepo.Update(ctx, letter); err != nil {
		return nil, apperror.Internal(err)
	}

	subject := letterType.Subject()
	text := fmt.Sprintf("Dear %s,\n\nPlease find your %s attached to this email.\n\nBest regards,\nHR Team", person.FullName, subject)
	html := fmt.Sprintf("<p>Dear %s,</p><p>Please find your %s attached to this email.</p><p>Best regards,<br>HR Team</p>", person.FullName, subject)
	attachmentName := fmt.Sprintf("%s.pdf", letterType)
	if err := u.mailer.SendEmail(ctx, person.Email, subject, text, html, attachmentName, fileURL); err != nil {
		return nil, apperror.Upstream("Failed to send letter email", err)
	}
	u.recordEmail(ctx, person.ID, subject, text)

	return letter, nil
}

// PendingEmployees lists employees with at least one unsent letter, each
// carrying only their unsent letters.
func (u *letterUsecase) PendingEmployees(ctx context.Context) ([]domain.Person, error) {
	employees, err := u.personRepo.List(ctx, domain.PersonFilter{Role: domain.RoleEmployee})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var pending []domain.Person
	for i := range employees {
		letters, err := u.letterRepo.ListByRecipient(ctx, employees[i].ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		var unsent []domain.Letter
		for _, l := range letters {
			if !l.IsSent {
				unsent = append(unsent, l)
			}
		}
		if len(unsent) > 0 {
			employees[i].Letters = unsent
			pending = append(pending, employees[i])
		}
	}
	return pending, nil
}

// CreateSent records a letter that was delivered outside the issuance flow.
// The variant details are required and the letter is marked sent immediately.
func (u *letterUsecase) CreateSent(ctx context.Context, employeeID string, draft *domain.Letter) (*domain.Letter, error) {
	person, err := u.personRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, apperror.Internal(err)
	}
	if _, err := person.AsEmployee(); err != nil {
		return nil, apperror.NotFound("Employee not found")
	}

	if err := draft.ValidateDetails(); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	now := time.Now()
	draft.RecipientID = employeeID
	draft.IsSent = true
	draft.SentAt = &now
	if err := u.letterRepo.Create(ctx, draft); err != nil {
		return nil, apperror.Internal(err)
	}
	return draft, nil
}

func (u *letterUsecase) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Letter, error) {
	if _, err := u.personRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, apperror.Internal(err)
	}
	letters, err := u.letterRepo.ListByRecipient(ctx, employeeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return letters, nil
}

func (u *letterUsecase) findOrCreate(ctx context.Context, employeeID string, letterType domain.LetterType) (*domain.Letter, error) {
	letters, err := u.letterRepo.ListByRecipient(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	for i := range letters {
		if letters[i].Type == letterType {
			return &letters[i], nil
		}
	}

	letter := &domain.Letter{RecipientID: employeeID, Type: letterType, IsSent: false}
	if err := u.letterRepo.Create(ctx, letter); err != nil {
		return nil, err
	}
	return letter, nil
}

func (u *letterUsecase) recordEmail(ctx context.Context, personID, subject, body string) {
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
