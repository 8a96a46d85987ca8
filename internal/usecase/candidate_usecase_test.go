package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/internal/usecase"
	"go-hrms-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCandidateFixtures() (*MockPersonRepo, *MockVacancyRepo, *MockLetterRepo, *MockEmailHistoryRepo, *MockFileStore, *MockNotifier, domain.CandidateUsecase) {
	personRepo := new(MockPersonRepo)
	vacancyRepo := new(MockVacancyRepo)
	letterRepo := new(MockLetterRepo)
	emailRepo := new(MockEmailHistoryRepo)
	store := new(MockFileStore)
	mailer := new(MockNotifier)

	validate := validator.New()
	validation.RegisterValidators(validate)

	uc := usecase.NewCandidateUsecase(personRepo, vacancyRepo, letterRepo, emailRepo, store, mailer, validate)
	return personRepo, vacancyRepo, letterRepo, emailRepo, store, mailer, uc
}

func candidateFixture(id string) *domain.Person {
	vacancyID := "vac-1"
	return &domain.Person{
		ID:        id,
		FullName:  "Jane Candidate",
		Email:     "jane@example.com",
		Role:      domain.RoleCandidate,
		Status:    domain.StatusActive,
		VacancyID: &vacancyID,
		CandidateData: &domain.CandidateData{
			ApplicationStatus: false,
		},
		Vacancy: &domain.Vacancy{ID: vacancyID, JobTitle: "Backend Engineer", VacancyName: "Backend 2026"},
	}
}

func TestApplyChecksVacancyBeforeUpload(t *testing.T) {
	personRepo, vacancyRepo, _, _, store, _, uc := newCandidateFixtures()
	_ = personRepo

	vacancyRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := uc.Apply(context.Background(), domain.CandidateApplication{
		FullName:   "Jane Candidate",
		Email:      "jane@example.com",
		Phone:      "+6281234567890",
		Address:    "Jakarta",
		Education:  "BSc",
		Experience: "3 years",
		VacancyID:  "missing",
		ResumeName: "resume.pdf",
		ResumeData: []byte("%PDF-1.4 fake"),
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Vacancy not found")
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyCreatesCandidate(t *testing.T) {
	personRepo, vacancyRepo, _, _, store, _, uc := newCandidateFixtures()

	vacancyRepo.On("GetByID", mock.Anything, "vac-1").Return(&domain.Vacancy{ID: "vac-1", JobTitle: "Backend Engineer"}, nil)
	personRepo.On("EmailExists", mock.Anything, "jane@example.com").Return(false, nil)
	personRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Person")).Return(nil)

	person, err := uc.Apply(context.Background(), domain.CandidateApplication{
		FullName:   "Jane Candidate",
		Email:      "jane@example.com",
		Phone:      "+6281234567890",
		Address:    "Jakarta",
		Education:  "BSc",
		Experience: "3 years",
		VacancyID:  "vac-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCandidate, person.Role)
	assert.NotNil(t, person.CandidateData)
	assert.False(t, person.CandidateData.ApplicationStatus)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideRejectsUnknownDecision(t *testing.T) {
	_, _, _, _, _, _, uc := newCandidateFixtures()

	_, err := uc.Decide(context.Background(), "cand-1", "Jane", "jane@example.com", "maybe")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepted or rejected")
}

func TestDecideAcceptedPromotesAndCreatesLetters(t *testing.T) {
	personRepo, _, letterRepo, emailRepo, _, mailer, uc := newCandidateFixtures()

	person := candidateFixture("cand-1")
	personRepo.On("GetByID", mock.Anything, "cand-1").Return(person, nil)
	personRepo.On("Update", mock.Anything, person).Return(nil)
	letterRepo.On("ListByRecipient", mock.Anything, "cand-1").Return([]domain.Letter{}, nil)
	letterRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Letter")).Return(nil).Twice()
	mailer.On("SendEmail", mock.Anything, "jane@example.com", mock.Anything, mock.Anything, mock.Anything, "", "").Return(nil)
	emailRepo.On("Record", mock.Anything, mock.AnythingOfType("*domain.EmailEntry")).Return(nil)

	result, err := uc.Decide(context.Background(), "cand-1", "Jane Candidate", "jane@example.com", domain.DecisionAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, result.Person.Role)
	assert.True(t, result.Person.CandidateData.ApplicationStatus)
	assert.NotNil(t, result.Person.EmployeeData)
	assert.Equal(t, "Backend Engineer", result.Person.EmployeeData.Department)
	assert.NotEmpty(t, result.Redirect)
	assert.Len(t, result.Person.Letters, 2)
	for _, l := range result.Person.Letters {
		assert.False(t, l.IsSent)
	}
	letterRepo.AssertNumberOfCalls(t, "Create", 2)
	letterRepo.AssertNotCalled(t, "MarkAllUnsent", mock.Anything, mock.Anything)
}

func TestDecideAcceptedReopensExistingLetters(t *testing.T) {
	personRepo, _, letterRepo, emailRepo, _, mailer, uc := newCandidateFixtures()

	person := candidateFixture("cand-2")
	personRepo.On("GetByID", mock.Anything, "cand-2").Return(person, nil)
	personRepo.On("Update", mock.Anything, person).Return(nil)
	letterRepo.On("ListByRecipient", mock.Anything, "cand-2").Return([]domain.Letter{
		{ID: "l1", RecipientID: "cand-2", Type: domain.LetterOffer, IsSent: true},
		{ID: "l2", RecipientID: "cand-2", Type: domain.LetterAppointment, IsSent: true},
	}, nil)
	letterRepo.On("MarkAllUnsent", mock.Anything, "cand-2").Return(nil)
	mailer.On("SendEmail", mock.Anything, "jane@example.com", mock.Anything, mock.Anything, mock.Anything, "", "").Return(nil)
	emailRepo.On("Record", mock.Anything, mock.AnythingOfType("*domain.EmailEntry")).Return(nil)

	result, err := uc.Decide(context.Background(), "cand-2", "Jane Candidate", "jane@example.com", domain.DecisionAccepted)

	assert.NoError(t, err)
	letterRepo.AssertCalled(t, "MarkAllUnsent", mock.Anything, "cand-2")
	letterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Len(t, result.Person.Letters, 2)
	for _, l := range result.Person.Letters {
		assert.False(t, l.IsSent)
	}
}

func TestDecideRejectedEmailsThenDeletes(t *testing.T) {
	personRepo, _, _, emailRepo, _, mailer, uc := newCandidateFixtures()

	person := candidateFixture("cand-3")
	personRepo.On("GetByID", mock.Anything, "cand-3").Return(person, nil)
	mailer.On("SendEmail", mock.Anything, "jane@example.com", mock.Anything, mock.Anything, mock.Anything, "", "").Return(nil)
	emailRepo.On("Record", mock.Anything, mock.AnythingOfType("*domain.EmailEntry")).Return(nil)
	personRepo.On("Delete", mock.Anything, "cand-3").Return(nil)

	result, err := uc.Decide(context.Background(), "cand-3", "Jane Candidate", "jane@example.com", domain.DecisionRejected)

	assert.NoError(t, err)
	assert.Nil(t, result.Person)
	emailRepo.AssertCalled(t, "Record", mock.Anything, mock.AnythingOfType("*domain.EmailEntry"))
	personRepo.AssertCalled(t, "Delete", mock.Anything, "cand-3")
}

func TestDecideRejectedEmailFailureKeepsRecord(t *testing.T) {
	personRepo, _, _, _, _, mailer, uc := newCandidateFixtures()

	person := candidateFixture("cand-4")
	personRepo.On("GetByID", mock.Anything, "cand-4").Return(person, nil)
	mailer.On("SendEmail", mock.Anything, "jane@example.com", mock.Anything, mock.Anything, mock.Anything, "", "").Return(errors.New("smtp down"))

	_, err := uc.Decide(context.Background(), "cand-4", "Jane Candidate", "jane@example.com", domain.DecisionRejected)

	assert.Error(t, err)
	personRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDecideMissingCandidate(t *testing.T) {
	personRepo, _, _, _, _, _, uc := newCandidateFixtures()

	personRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	_, err := uc.Decide(context.Background(), "ghost", "Jane", "jane@example.com", domain.DecisionAccepted)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Candidate not found")
}
