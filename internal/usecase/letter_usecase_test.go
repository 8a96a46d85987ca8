package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Minimal valid PDF bytes for the upload magic-byte check.
var pdfBytes = []byte("%PDF-1.4\n%fake document")

func newLetterFixtures() (*MockLetterRepo, *MockPersonRepo, *MockEmailHistoryRepo, *MockFileStore, *MockNotifier, domain.LetterUsecase) {
	letterRepo := new(MockLetterRepo)
	personRepo := new(MockPersonRepo)
	emailRepo := new(MockEmailHistoryRepo)
	store := new(MockFileStore)
	mailer := new(MockNotifier)
	uc := usecase.NewLetterUsecase(letterRepo, personRepo, emailRepo, store, mailer)
	return letterRepo, personRepo, emailRepo, store, mailer, uc
}

func employeeFixture(id string) *domain.Person {
	return &domain.Person{
		ID:       id,
		FullName: "John Employee",
		Email:    "john@example.com",
		Role:     domain.RoleEmployee,
		Status:   domain.StatusActive,
		EmployeeData: &domain.EmployeeData{
			Department: "Engineering",
			HireDate:   time.Now(),
		},
	}
}

func TestIssueRejectsAlreadySentLetter(t *testing.T) {
	letterRepo, personRepo, _, store, mailer, uc := newLetterFixtures()

	personRepo.On("GetByID", mock.Anything, "emp-1").Return(employeeFixture("emp-1"), nil)
	store.On("Upload", mock.Anything, "letters", "offer.pdf", mock.Anything, pdfBytes).Return("https://bucket/letters/offer.pdf", nil)
	letterRepo.On("ListByRecipient", mock.Anything, "emp-1").Return([]domain.Letter{
		{ID: "l1", RecipientID: "emp-1", Type: domain.LetterOffer, IsSent: true},
	}, nil)

	_, err := uc.Issue(context.Background(), "emp-1", domain.LetterOffer, "offer.pdf", pdfBytes)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Letter has already been sent.")
	// the upload happens before the sent check; the storage call is spent
	store.AssertCalled(t, "Upload", mock.Anything, "letters", "offer.pdf", mock.Anything, pdfBytes)
	letterRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIssueMarksSentAndEmails(t *testing.T) {
	letterRepo, personRepo, emailRepo, store, mailer, uc := newLetterFixtures()

	personRepo.On("GetByID", mock.Anything, "emp-1").Return(employeeFixture("emp-1"), nil)
	store.On("Upload", mock.Anything, "letters", "offer.pdf", mock.Anything, pdfBytes).Return("https://bucket/letters/offer.pdf", nil)
	letterRepo.On("ListByRecipient", mock.Anything, "emp-1").Return([]domain.Letter{
		{ID: "l1", RecipientID: "emp-1", Type: domain.LetterOffer, IsSent: false},
	}, nil)
	letterRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Letter")).Return(nil)
	mailer.On("SendEmail", mock.Anything, "john@example.com", "Offer Letter", mock.Anything, mock.Anything, "offer.pdf", "https://bucket/letters/offer.pdf").Return(nil)
	emailRepo.On("Record", mock.Anything, mock.AnythingOfType("*domain.EmailEntry")).Return(nil)

	letter, err := uc.Issue(context.Background(), "emp-1", domain.LetterOffer, "offer.pdf", pdfBytes)

	assert.NoError(t, err)
	assert.True(t, letter.IsSent)
	assert.NotNil(t, letter.SentAt)
	assert.Equal(t, "https://bucket/letters/offer.pdf", letter.FileURL)
}

func TestIssueCreatesMissingLetterType(t *testing.T) {
	letterRepo, personRepo, emailRepo, store, mailer, uc := newLetterFixtures()

	personRepo.On("GetByID", mock.Anything, "emp-1").Return(employeeFixture("emp-1"), nil)
	store.On("Upload", mock.Anything, "letters", "appointment.pdf", mock.Anything, pdfBytes).Return("https://bucket/letters/appointment.pdf", nil)
	// only an offer letter exists; the appointment letter must be created
	letterRepo.On("ListByRecipient", mock.Anything, "emp-1").Return([]domain.Letter{
		{ID: "l1", RecipientID: "emp-1", Type: domain.LetterOffer, IsSent: false},
	}, nil)
	letterRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Letter")).Return(nil)
	letterRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Letter")).Return(nil)
	mailer.On("SendEmail", mock.Anything, "john@example.com", "Appointment Letter", mock.Anything, mock.Anything, "appointment.pdf", mock.Anything).Return(nil)
	emailRepo.On("Record", mock.Anything, mock.AnythingOfType("*domain.EmailEntry")).Return(nil)

	letter, err := uc.Issue(context.Background(), "emp-1", domain.LetterAppointment, "appointment.pdf", pdfBytes)

	assert.NoError(t, err)
	assert.Equal(t, domain.LetterAppointment, letter.Type)
	letterRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.Letter"))
}

func TestIssueUploadsBeforeEmployeeLookup(t *testing.T) {
	letterRepo, personRepo, _, store, _, uc := newLetterFixtures()

	store.On("Upload", mock.Anything, "letters", "offer.pdf", mock.Anything, pdfBytes).Return("https://bucket/letters/offer.pdf", nil)
	personRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	_, err := uc.Issue(context.Background(), "ghost", domain.LetterOffer, "offer.pdf", pdfBytes)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Employee not found")
	store.AssertCalled(t, "Upload", mock.Anything, "letters", "offer.pdf", mock.Anything, pdfBytes)
	letterRepo.AssertNotCalled(t, "ListByRecipient", mock.Anything, mock.Anything)
}

func TestIssueRejectsInvalidType(t *testing.T) {
	_, _, _, store, _, uc := newLetterFixtures()

	_, err := uc.Issue(context.Background(), "emp-1", domain.LetterType("memo"), "memo.pdf", pdfBytes)

	assert.Error(t, err)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPendingEmployeesFiltersUnsent(t *testing.T) {
	letterRepo, personRepo, _, _, _, uc := newLetterFixtures()

	personRepo.On("List", mock.Anything, domain.PersonFilter{Role: domain.RoleEmployee}).Return([]domain.Person{
		*employeeFixture("emp-1"),
		*employeeFixture("emp-2"),
	}, nil)
	letterRepo.On("ListByRecipient", mock.Anything, "emp-1").Return([]domain.Letter{
		{ID: "l1", Type: domain.LetterOffer, IsSent: true},
		{ID: "l2", Type: domain.LetterAppointment, IsSent: false},
	}, nil)
	letterRepo.On("ListByRecipient", mock.Anything, "emp-2").Return([]domain.Letter{
		{ID: "l3", Type: domain.LetterOffer, IsSent: true},
	}, nil)

	pending, err := uc.PendingEmployees(context.Background())

	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "emp-1", pending[0].ID)
	assert.Len(t, pending[0].Letters, 1)
	assert.Equal(t, "l2", pending[0].Letters[0].ID)
}

func TestCreateSentValidatesDetails(t *testing.T) {
	letterRepo, personRepo, _, _, _, uc := newLetterFixtures()

	personRepo.On("GetByID", mock.Anything, "emp-1").Return(employeeFixture("emp-1"), nil)

	_, err := uc.CreateSent(context.Background(), "emp-1", &domain.Letter{
		Type:  domain.LetterOffer,
		Offer: &domain.OfferDetails{Salary: "", JoiningDate: "2026-10-01"},
	})

	assert.Error(t, err)
	letterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSentMarksSentImmediately(t *testing.T) {
	letterRepo, personRepo, _, _, _, uc := newLetterFixtures()

	personRepo.On("GetByID", mock.Anything, "emp-1").Return(employeeFixture("emp-1"), nil)
	letterRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Letter")).Return(nil)

	letter, err := uc.CreateSent(context.Background(), "emp-1", &domain.Letter{
		Type:  domain.LetterOffer,
		Offer: &domain.OfferDetails{Salary: "90000", JoiningDate: "2026-10-01"},
	})

	assert.NoError(t, err)
	assert.True(t, letter.IsSent)
	assert.NotNil(t, letter.SentAt)
	assert.Equal(t, "emp-1", letter.RecipientID)
}
