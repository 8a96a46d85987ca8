package postgres

import (
	"context"
	"encoding/json"
	"time"

	"go-hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type letterRepo struct {
	db *pgxpool.Pool
}

// NewLetterRepository creates a new letter repository
func NewLetterRepository(db *pgxpool.Pool) domain.LetterRepository {
	return &letterRepo{db: db}
}

// Create inserts a letter. The details JSONB column stores whichever variant
// payload matches the discriminant, or NULL for unsent placeholders.
func (r *letterRepo) Create(ctx context.Context, l *domain.Letter) error {
	query := `
		INSERT INTO letters (recipient_id, letter_type, is_sent, file_url, sent_at, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	details, err := marshalLetterDetails(l)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, query,
		l.RecipientID, string(l.Type), l.IsSent, nullable(l.FileURL), l.SentAt, details,
		l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
}

// GetByID retrieves a letter by id
func (r *letterRepo) GetByID(ctx context.Context, id string) (*domain.Letter, error) {
	query := `
		SELECT id, recipient_id, letter_type, is_sent, file_url, sent_at, details, created_at, updated_at
		FROM letters WHERE id = $1`

	l, err := scanLetter(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return l, err
}

// ListByRecipient retrieves all letters attached to a person, oldest first so
// the offer created at acceptance time stays ahead of later reissues.
func (r *letterRepo) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Letter, error) {
	query := `
		SELECT id, recipient_id, letter_type, is_sent, file_url, sent_at, details, created_at, updated_at
		FROM letters WHERE recipient_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var letters []domain.Letter
	for rows.Next() {
		l, err := scanLetter(rows)
		if err != nil {
			return nil, err
		}
		letters = append(letters, *l)
	}
	return letters, rows.Err()
}

// Update persists the mutable letter state (sent flag, file URL, details)
func (r *letterRepo) Update(ctx context.Context, l *domain.Letter) error {
	query := `
		UPDATE letters SET is_sent = $2, file_url = $3, sent_at = $4, details = $5, updated_at = $6
		WHERE id = $1`

	l.UpdatedAt = time.Now()

	details, err := marshalLetterDetails(l)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, l.ID, l.IsSent, nullable(l.FileURL), l.SentAt, details, l.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllUnsent re-opens every letter of a recipient for reissue
func (r *letterRepo) MarkAllUnsent(ctx context.Context, recipientID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE letters SET is_sent = false, sent_at = NULL, updated_at = $2 WHERE recipient_id = $1`,
		recipientID, time.Now())
	return err
}

// CountUnsent counts letters awaiting dispatch
func (r *letterRepo) CountUnsent(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM letters WHERE is_sent = false`).Scan(&count)
	return count, err
}

func marshalLetterDetails(l *domain.Letter) ([]byte, error) {
	switch {
	case l.Type == domain.LetterOffer && l.Offer != nil:
		return json.Marshal(l.Offer)
	case l.Type == domain.LetterAppointment && l.Appointment != nil:
		return json.Marshal(l.Appointment)
	default:
		return nil, nil
	}
}

func scanLetter(row pgx.Row) (*domain.Letter, error) {
	var l domain.Letter
	var letterType string
	var fileURL *string
	var details []byte

	err := row.Scan(&l.ID, &l.RecipientID, &letterType, &l.IsSent, &fileURL, &l.SentAt, &details, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	l.Type = domain.LetterType(letterType)
	l.FileURL = deref(fileURL)

	if len(details) > 0 {
		switch l.Type {
		case domain.LetterOffer:
			l.Offer = &domain.OfferDetails{}
			err = json.Unmarshal(details, l.Offer)
		case domain.LetterAppointment:
			l.Appointment = &domain.AppointmentDetails{}
			err = json.Unmarshal(details, l.Appointment)
		}
		if err != nil {
			return nil, err
		}
	}

	return &l, nil
}
