package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock repositories and collaborators shared by the usecase tests.

type MockPersonRepo struct {
	mock.Mock
}

func (m *MockPersonRepo) Create(ctx context.Context, p *domain.Person) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockPersonRepo) List(ctx context.Context, filter domain.PersonFilter) ([]domain.Person, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}
func (m *MockPersonRepo) Update(ctx context.Context, p *domain.Person) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPersonRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockPersonRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockPersonRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVacancyRepo) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) List(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVacancyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockVacancyRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLetterRepo struct {
	mock.Mock
}

func (m *MockLetterRepo) Create(ctx context.Context, l *domain.Letter) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLetterRepo) GetByID(ctx context.Context, id string) (*domain.Letter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Letter), args.Error(1)
}
func (m *MockLetterRepo) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Letter, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Letter), args.Error(1)
}
func (m *MockLetterRepo) Update(ctx context.Context, l *domain.Letter) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLetterRepo) MarkAllUnsent(ctx context.Context, recipientID string) error {
	return m.Called(ctx, recipientID).Error(0)
}
func (m *MockLetterRepo) CountUnsent(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) List(ctx context.Context) ([]domain.Interview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Interview, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockInterviewRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockHRUserRepo struct {
	mock.Mock
}

func (m *MockHRUserRepo) Create(ctx context.Context, u *domain.HRUser) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockHRUserRepo) GetByEmail(ctx context.Context, email string) (*domain.HRUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HRUser), args.Error(1)
}
func (m *MockHRUserRepo) GetByID(ctx context.Context, id string) (*domain.HRUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HRUser), args.Error(1)
}
func (m *MockHRUserRepo) Update(ctx context.Context, u *domain.HRUser) error {
	return m.Called(ctx, u).Error(0)
}

type MockEmailHistoryRepo struct {
	mock.Mock
}

func (m *MockEmailHistoryRepo) Record(ctx context.Context, e *domain.EmailEntry) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEmailHistoryRepo) ListByPerson(ctx context.Context, personID string) ([]domain.EmailEntry, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmailEntry), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmail(ctx context.Context, to, subject, text, html, attachmentName, attachmentURL string) error {
	return m.Called(ctx, to, subject, text, html, attachmentName, attachmentURL).Error(0)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, folder, filename, contentType, data)
	return args.String(0), args.Error(1)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Chat(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockResumeReader struct {
	mock.Mock
}

func (m *MockResumeReader) Extract(ctx context.Context, pdfURL string) (string, error) {
	args := m.Called(ctx, pdfURL)
	return args.String(0), args.Error(1)
}
