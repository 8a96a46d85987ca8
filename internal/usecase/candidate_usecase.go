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

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	personRepo  domain.PersonRepository
	vacancyRepo domain.VacancyRepository
	letterRepo  domain.LetterRepository
	emailRepo   domain.EmailHistoryRepository
	store       domain.FileStore
	mailer      domain.Notifier
	validate    *validator.Validate
}

func NewCandidateUsecase(
	personRepo domain.PersonRepository,
	vacancyRepo domain.VacancyRepository,
	letterRepo domain.LetterRepository,
	emailRepo domain.EmailHistoryRepository,
	store domain.FileStore,
	mailer domain.Notifier,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		personRepo:  personRepo,
		vacancyRepo: vacancyRepo,
		letterRepo:  letterRepo,
		emailRepo:   emailRepo,
		store:       store,
		mailer:      mailer,
		validate:    validate,
	}
}

// Apply registers a new candidate. The vacancy is verified before the resume
// is uploaded so an invalid application never consumes a storage call.
func (u *candidateUsecase) Apply(ctx context.Context, app domain.CandidateApplication) (*domain.Person, error) {
	if err := u.validate.Struct(app); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	vacancy, err := u.vacancyRepo.GetByID(ctx, app.VacancyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.personRepo.EmailExists(ctx, app.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("An application with this email already exists")
	}

	var resumeURL string
	if len(app.ResumeData) > 0 {
		if err := upload.ValidateDocument(app.ResumeName, app.ResumeData); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		resumeURL, err = u.store.Upload(ctx, "resumes", app.ResumeName, upload.ContentType(app.ResumeName), app.ResumeData)
		if err != nil {
			return nil, apperror.Upstream("Failed to upload resume", err)
		}
	}

	person := &domain.Person{
		FullName:   app.FullName,
		Email:      app.Email,
		Phone:      app.Phone,
		Address:    app.Address,
		Education:  app.Education,
		Experience: app.Experience,
		LinkedIn:   app.LinkedIn,
		Role:       domain.RoleCandidate,
		Status:     domain.StatusActive,
		ResumeURL:  resumeURL,
		VacancyID:  &vacancy.ID,
		CandidateData: &domain.CandidateData{
			ApplicationStatus: false,
			Notes:             app.Notes,
		},
	}
	if err := u.personRepo.Create(ctx, person); err != nil {
		return nil, apperror.Internal(err)
	}
	person.Vacancy = vacancy
	return person, nil
}

func (u *candidateUsecase) List(ctx context.Context, vacancyID string) ([]domain.Person, error) {
	persons, err := u.personRepo.List(ctx, domain.PersonFilter{
		Role:      domain.RoleCandidate,
		VacancyID: vacancyID,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return persons, nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	person, err := u.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	if _, err := person.AsCandidate(); err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return person, nil
}

// Decide runs the accept/reject workflow. The steps are sequential with no
// rollback: a crash mid-way can leave a promoted employee without letters, and
// duplicate submissions surface as not-found on the second call.
func (u *candidateUsecase) Decide(ctx context.Context, candidateID, fullName, email, decision string) (*domain.DecisionResult, error) {
	if decision != domain.DecisionAccepted && decision != domain.DecisionRejected {
		return nil, apperror.BadRequest("Decision must be accepted or rejected")
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

	if decision == domain.DecisionRejected {
		return u.reject(ctx, person)
	}
	return u.accept(ctx, person)
}

func (u *candidateUsecase) accept(ctx context.Context, person *domain.Person) (*domain.DecisionResult, error) {
	department := ""
	if person.Vacancy != nil {
		department = person.Vacancy.JobTitle
	}

	person.Role = domain.RoleEmployee
	person.CandidateData.ApplicationStatus = true
	person.EmployeeData = &domain.EmployeeData{
		Department: department,
		HireDate:   time.Now(),
	}
	if err := u.personRepo.Update(ctx, person); err != nil {
		return nil, apperror.Internal(err)
	}

	letters, err := u.ensureLetters(ctx, person.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	person.Letters = letters

	subject := "Congratulations! Your application has been accepted"
	text := fmt.Sprintf("Dear %s,\n\nCongratulations! We are pleased to inform you that your application has been accepted. Our HR team will contact you shortly with your offer letter and next steps.\n\nBest regards,\nHR Team", person.FullName)
	html := fmt.Sprintf("<p>Dear %s,</p><p>Congratulations! We are pleased to inform you that your application has been <strong>accepted</strong>. Our HR team will contact you shortly with your offer letter and next steps.</p><p>Best regards,<br>HR Team</p>", person.FullName)
	if err := u.mailer.SendEmail(ctx, person.Email, subject, text, html, "", ""); err != nil {
		return nil, apperror.Upstream("Failed to send acceptance email", err)
	}
	u.recordEmail(ctx, person.ID, subject, text)

	return &domain.DecisionResult{
		Person:   person,
		Message:  "Candidate accepted and promoted to employee",
		Redirect: "/employees",
	}, nil
}

func (u *candidateUsecase) reject(ctx context.Context, person *domain.Person) (*domain.DecisionResult, error) {
	subject := "Update on your application"
	text := fmt.Sprintf("Dear %s,\n\nThank you for your interest in joining us. After careful consideration we have decided not to move forward with your application at this time. We wish you the best in your search.\n\nBest regards,\nHR Team", person.FullName)
	html := fmt.Sprintf("<p>Dear %s,</p><p>Thank you for your interest in joining us. After careful consideration we have decided not to move forward with your application at this time. We wish you the best in your search.</p><p>Best regards,<br>HR Team</p>", person.FullName)
	if err := u.mailer.SendEmail(ctx, person.Email, subject, text, html, "", ""); err != nil {
		return nil, apperror.Upstream("Failed to send rejection email", err)
	}
	// Recorded before the delete; the history row has no FK and outlives the person.
	u.recordEmail(ctx, person.ID, subject, text)

	if err := u.personRepo.Delete(ctx, person.ID); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.DecisionResult{Message: "Candidate rejected and removed"}, nil
}

// ensureLetters guarantees the new employee has one offer and one appointment
// letter open for dispatch. Existing letters are re-opened instead of
// duplicated so a re-accepted candidate gets a fresh issuance cycle. The
// returned slice reflects the post-decision state for the response body.
func (u *candidateUsecase) ensureLetters(ctx context.Context, personID string) ([]domain.Letter, error) {
	letters, err := u.letterRepo.ListByRecipient(ctx, personID)
	if err != nil {
		return nil, err
	}

	if len(letters) == 0 {
		for _, t := range []domain.LetterType{domain.LetterOffer, domain.LetterAppointment} {
			l := &domain.Letter{RecipientID: personID, Type: t, IsSent: false}
			if err := u.letterRepo.Create(ctx, l); err != nil {
				return nil, err
			}
			letters = append(letters, *l)
		}
		return letters, nil
	}

	if err := u.letterRepo.MarkAllUnsent(ctx, personID); err != nil {
		return nil, err
	}
	for i := range letters {
		letters[i].IsSent = false
		letters[i].SentAt = nil
	}
	return letters, nil
}

// recordEmail is best-effort; a failed audit insert never fails the workflow.
func (u *candidateUsecase) recordEmail(ctx context.Context, personID, subject, body string) {
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
