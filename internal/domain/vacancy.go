package domain

import (
	"context"
	"time"
)

// Vacancy is a job posting. It is referenced, never owned, by Person.
type Vacancy struct {
	ID                 string    `json:"id"`
	VacancyName        string    `json:"vacancyName" validate:"required,min=2,max=120"`
	JobTitle           string    `json:"jobTitle" validate:"required,min=2,max=120"`
	Description        string    `json:"description" validate:"required"`
	Positions          int       `json:"positions" validate:"required,min=1"`
	IsActive           bool      `json:"isActive"`
	HiringManager      string    `json:"hiringManager" validate:"required,valid_name"`
	HiringManagerEmail string    `json:"hiringManagerEmail" validate:"required,email"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// VacancyRepository defines data access for vacancies
type VacancyRepository interface {
	Create(ctx context.Context, v *Vacancy) error
	GetByID(ctx context.Context, id string) (*Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
	Update(ctx context.Context, v *Vacancy) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// VacancyUsecase defines business logic for vacancies
type VacancyUsecase interface {
	Create(ctx context.Context, v *Vacancy) error
	GetByID(ctx context.Context, id string) (*Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
	Update(ctx context.Context, v *Vacancy) error
	Delete(ctx context.Context, id string) error
}
