package usecase

import (
	"context"
	"errors"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type vacancyUsecase struct {
	repo     domain.VacancyRepository
	validate *validator.Validate
}

func NewVacancyUsecase(repo domain.VacancyRepository, validate *validator.Validate) domain.VacancyUsecase {
	return &vacancyUsecase{repo: repo, validate: validate}
}

func (u *vacancyUsecase) Create(ctx context.Context, v *domain.Vacancy) error {
	if err := u.validate.Struct(v); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.repo.Create(ctx, v); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *vacancyUsecase) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}
	return v, nil
}

func (u *vacancyUsecase) List(ctx context.Context) ([]domain.Vacancy, error) {
	vacancies, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return vacancies, nil
}

func (u *vacancyUsecase) Update(ctx context.Context, v *domain.Vacancy) error {
	if err := u.validate.Struct(v); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.repo.Update(ctx, v); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Vacancy not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *vacancyUsecase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Vacancy not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
