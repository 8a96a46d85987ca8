package postgres

import (
	"context"
	"time"

	"go-hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type hrUserRepo struct {
	db *pgxpool.Pool
}

// NewHRUserRepository creates a new HR account repository
func NewHRUserRepository(db *pgxpool.Pool) domain.HRUserRepository {
	return &hrUserRepo{db: db}
}

const hrUserColumns = `id, name, email, phone, password_hash, profile_image, position, department, experience, about, created_at, updated_at`

// Create inserts an HR account
func (r *hrUserRepo) Create(ctx context.Context, u *domain.HRUser) error {
	query := `
		INSERT INTO hr_users (name, email, phone, password_hash, profile_image, position, department, experience, about, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		u.Name, u.Email, nullable(u.Phone), u.PasswordHash, nullable(u.ProfileImage),
		nullable(u.Position), nullable(u.Department), nullable(u.Experience), nullable(u.About),
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
}

// GetByEmail retrieves an HR account by email
func (r *hrUserRepo) GetByEmail(ctx context.Context, email string) (*domain.HRUser, error) {
	query := `SELECT ` + hrUserColumns + ` FROM hr_users WHERE email = $1`

	u, err := scanHRUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return u, err
}

// GetByID retrieves an HR account by id
func (r *hrUserRepo) GetByID(ctx context.Context, id string) (*domain.HRUser, error) {
	query := `SELECT ` + hrUserColumns + ` FROM hr_users WHERE id = $1`

	u, err := scanHRUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return u, err
}

// Update persists HR profile changes
func (r *hrUserRepo) Update(ctx context.Context, u *domain.HRUser) error {
	query := `
		UPDATE hr_users SET name = $2, email = $3, phone = $4, profile_image = $5,
			position = $6, department = $7, experience = $8, about = $9, updated_at = $10
		WHERE id = $1`

	u.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		u.ID, u.Name, u.Email, nullable(u.Phone), nullable(u.ProfileImage),
		nullable(u.Position), nullable(u.Department), nullable(u.Experience), nullable(u.About),
		u.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanHRUser(row pgx.Row) (*domain.HRUser, error) {
	var u domain.HRUser
	var phone, profileImage, position, department, experience, about *string

	err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &u.PasswordHash, &profileImage,
		&position, &department, &experience, &about, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	u.Phone = deref(phone)
	u.ProfileImage = deref(profileImage)
	u.Position = deref(position)
	u.Department = deref(department)
	u.Experience = deref(experience)
	u.About = deref(about)
	return &u, nil
}
