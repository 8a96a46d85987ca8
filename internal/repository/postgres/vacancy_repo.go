package postgres

import (
	"context"
	"time"

	"go-hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vacancyRepo struct {
	db *pgxpool.Pool
}

// NewVacancyRepository creates a new vacancy repository
func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

const vacancyColumns = `id, vacancy_name, job_title, description, positions, is_active, hiring_manager, hiring_manager_email, created_at, updated_at`

// Create inserts a vacancy
func (r *vacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	query := `
		INSERT INTO vacancies (vacancy_name, job_title, description, positions, is_active, hiring_manager, hiring_manager_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		v.VacancyName, v.JobTitle, nullable(v.Description), v.Positions, v.IsActive,
		nullable(v.HiringManager), nullable(v.HiringManagerEmail),
		v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
}

// GetByID retrieves a vacancy by id
func (r *vacancyRepo) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1`

	v, err := scanVacancy(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return v, err
}

// List retrieves all vacancies, newest first
func (r *vacancyRepo) List(ctx context.Context) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, err
		}
		vacancies = append(vacancies, *v)
	}
	return vacancies, rows.Err()
}

// Update persists vacancy changes
func (r *vacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	query := `
		UPDATE vacancies SET vacancy_name = $2, job_title = $3, description = $4, positions = $5,
			is_active = $6, hiring_manager = $7, hiring_manager_email = $8, updated_at = $9
		WHERE id = $1`

	v.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		v.ID, v.VacancyName, v.JobTitle, nullable(v.Description), v.Positions, v.IsActive,
		nullable(v.HiringManager), nullable(v.HiringManagerEmail), v.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a vacancy
func (r *vacancyRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the total number of vacancies
func (r *vacancyRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vacancies`).Scan(&count)
	return count, err
}

func scanVacancy(row pgx.Row) (*domain.Vacancy, error) {
	var v domain.Vacancy
	var description, hiringManager, hiringManagerEmail *string

	err := row.Scan(&v.ID, &v.VacancyName, &v.JobTitle, &description, &v.Positions, &v.IsActive,
		&hiringManager, &hiringManagerEmail, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}

	v.Description = deref(description)
	v.HiringManager = deref(hiringManager)
	v.HiringManagerEmail = deref(hiringManagerEmail)
	return &v, nil
}
