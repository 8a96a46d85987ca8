package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompareResumeReturnsRawModelText(t *testing.T) {
	reader := new(MockResumeReader)
	ai := new(MockTextGenerator)
	uc := usecase.NewScreeningUsecase(reader, ai)

	reader.On("Extract", mock.Anything, "https://bucket/resumes/jane.pdf").Return("Go developer, 5 years", nil)
	ai.On("Chat", mock.Anything, mock.AnythingOfType("string")).Return("85 - strong backend match", nil)

	score, err := uc.CompareResume(context.Background(), "https://bucket/resumes/jane.pdf", "Backend engineer, Go")

	assert.NoError(t, err)
	assert.Equal(t, "85 - strong backend match", score)
}

func TestCompareResumeSurfacesExtractionFailure(t *testing.T) {
	reader := new(MockResumeReader)
	ai := new(MockTextGenerator)
	uc := usecase.NewScreeningUsecase(reader, ai)

	reader.On("Extract", mock.Anything, "https://bucket/resumes/broken.pdf").Return("", errors.New("not a pdf"))

	_, err := uc.CompareResume(context.Background(), "https://bucket/resumes/broken.pdf", "Backend engineer")

	assert.Error(t, err)
	ai.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestCompareResumeRequiresInput(t *testing.T) {
	uc := usecase.NewScreeningUsecase(new(MockResumeReader), new(MockTextGenerator))

	_, err := uc.CompareResume(context.Background(), "", "")

	assert.Error(t, err)
}

func TestDashboardStatsAggregatesCounters(t *testing.T) {
	personRepo := new(MockPersonRepo)
	vacancyRepo := new(MockVacancyRepo)
	letterRepo := new(MockLetterRepo)
	interviewRepo := new(MockInterviewRepo)
	uc := usecase.NewDashboardUsecase(personRepo, vacancyRepo, letterRepo, interviewRepo)

	personRepo.On("CountByRole", mock.Anything, domain.RoleEmployee).Return(int64(12), nil)
	personRepo.On("CountByRole", mock.Anything, domain.RoleCandidate).Return(int64(30), nil)
	vacancyRepo.On("Count", mock.Anything).Return(int64(4), nil)
	letterRepo.On("CountUnsent", mock.Anything).Return(int64(3), nil)
	interviewRepo.On("CountByStatus", mock.Anything, domain.InterviewScheduled).Return(int64(5), nil)

	stats, err := uc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.Employees)
	assert.Equal(t, int64(30), stats.Candidates)
	assert.Equal(t, int64(4), stats.Vacancies)
	assert.Equal(t, int64(3), stats.PendingLetters)
	assert.Equal(t, int64(5), stats.ScheduledInterviews)
}
