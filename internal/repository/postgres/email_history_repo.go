package postgres

import (
	"context"
	"time"

	"go-hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type emailHistoryRepo struct {
	db *pgxpool.Pool
}

// NewEmailHistoryRepository creates a new email history repository
func NewEmailHistoryRepository(db *pgxpool.Pool) domain.EmailHistoryRepository {
	return &emailHistoryRepo{db: db}
}

// Record inserts one email audit entry
func (r *emailHistoryRepo) Record(ctx context.Context, e *domain.EmailEntry) error {
	query := `
		INSERT INTO email_history (person_id, subject, body, sent_at, direction)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if e.SentAt.IsZero() {
		e.SentAt = time.Now()
	}

	return r.db.QueryRow(ctx, query, e.PersonID, e.Subject, e.Body, e.SentAt, e.Direction).Scan(&e.ID)
}

// ListByPerson retrieves the email trail of a person, newest first
func (r *emailHistoryRepo) ListByPerson(ctx context.Context, personID string) ([]domain.EmailEntry, error) {
	query := `
		SELECT id, person_id, subject, body, sent_at, direction
		FROM email_history WHERE person_id = $1
		ORDER BY sent_at DESC`

	rows, err := r.db.Query(ctx, query, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.EmailEntry
	for rows.Next() {
		var e domain.EmailEntry
		if err := rows.Scan(&e.ID, &e.PersonID, &e.Subject, &e.Body, &e.SentAt, &e.Direction); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
