package usecase

import (
	"context"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"
)

type dashboardUsecase struct {
	personRepo    domain.PersonRepository
	vacancyRepo   domain.VacancyRepository
	letterRepo    domain.LetterRepository
	interviewRepo domain.InterviewRepository
}

func NewDashboardUsecase(
	personRepo domain.PersonRepository,
	vacancyRepo domain.VacancyRepository,
	letterRepo domain.LetterRepository,
	interviewRepo domain.InterviewRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		personRepo:    personRepo,
		vacancyRepo:   vacancyRepo,
		letterRepo:    letterRepo,
		interviewRepo: interviewRepo,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	var err error
	if stats.Employees, err = u.personRepo.CountByRole(ctx, domain.RoleEmployee); err != nil {
		return nil, apperror.Internal(err)
	}
	if stats.Candidates, err = u.personRepo.CountByRole(ctx, domain.RoleCandidate); err != nil {
		return nil, apperror.Internal(err)
	}
	if stats.Vacancies, err = u.vacancyRepo.Count(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if stats.PendingLetters, err = u.letterRepo.CountUnsent(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if stats.ScheduledInterviews, err = u.interviewRepo.CountByStatus(ctx, domain.InterviewScheduled); err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}
