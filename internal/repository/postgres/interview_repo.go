package postgres

import (
	"context"
	"time"

	"go-hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `id, candidate_id, vacancy_id, interview_date, interview_time, additional_notes, status, created_at, updated_at`

// Create inserts an interview
func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	query := `
		INSERT INTO interviews (candidate_id, vacancy_id, interview_date, interview_time, additional_notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		iv.CandidateID, iv.VacancyID, iv.InterviewDate, iv.InterviewTime,
		nullable(iv.AdditionalNotes), iv.Status,
		iv.CreatedAt, iv.UpdatedAt,
	).Scan(&iv.ID)
}

// GetByID retrieves an interview by id
func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	iv, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return iv, err
}

// List retrieves all interviews ordered by interview date
func (r *interviewRepo) List(ctx context.Context) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY interview_date ASC, interview_time ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

// UpdateStatus changes only the status field and returns the updated record
func (r *interviewRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Interview, error) {
	query := `
		UPDATE interviews SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + interviewColumns

	iv, err := scanInterview(r.db.QueryRow(ctx, query, id, status, time.Now()))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return iv, err
}

// Delete removes an interview
func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus counts interviews in a given status
func (r *interviewRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM interviews WHERE status = $1`, status).Scan(&count)
	return count, err
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	var additionalNotes *string

	err := row.Scan(&iv.ID, &iv.CandidateID, &iv.VacancyID, &iv.InterviewDate, &iv.InterviewTime,
		&additionalNotes, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return nil, err
	}

	iv.AdditionalNotes = deref(additionalNotes)
	return &iv, nil
}
