package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type personRepo struct {
	db *pgxpool.Pool
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *pgxpool.Pool) domain.PersonRepository {
	return &personRepo{db: db}
}

const personColumns = `
	p.id, p.full_name, p.email, p.phone, p.address, p.education, p.experience,
	p.linked_in, p.role, p.status, p.resume_url, p.profile_image, p.vacancy_id,
	p.candidate_data, p.employee_data, p.activities, p.created_at, p.updated_at`

// Create inserts a new person. The caller sets role, status and the
// role-matching sub-object; the row id comes back from the database.
func (r *personRepo) Create(ctx context.Context, p *domain.Person) error {
	query := `
		INSERT INTO persons (full_name, email, phone, address, education, experience,
			linked_in, role, status, resume_url, profile_image, vacancy_id,
			candidate_data, employee_data, activities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	candidateData, employeeData, activities, err := marshalPersonJSON(p)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, query,
		p.FullName, p.Email, p.Phone, p.Address, p.Education, p.Experience,
		nullable(p.LinkedIn), p.Role, p.Status, nullable(p.ResumeURL), nullable(p.ProfileImage), p.VacancyID,
		candidateData, employeeData, activities, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

// GetByID retrieves a person with the referenced vacancy populated
func (r *personRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			v.id, v.vacancy_name, v.job_title, v.description, v.positions,
			v.is_active, v.hiring_manager, v.hiring_manager_email, v.created_at, v.updated_at
		FROM persons p
		LEFT JOIN vacancies v ON p.vacancy_id = v.id
		WHERE p.id = $1`, personColumns)

	row := r.db.QueryRow(ctx, query, id)
	p, err := scanPersonWithVacancy(row)
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return p, err
}

// List retrieves persons matching the filter, newest first, with vacancies
// populated for list views.
func (r *personRepo) List(ctx context.Context, filter domain.PersonFilter) ([]domain.Person, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			v.id, v.vacancy_name, v.job_title, v.description, v.positions,
			v.is_active, v.hiring_manager, v.hiring_manager_email, v.created_at, v.updated_at
		FROM persons p
		LEFT JOIN vacancies v ON p.vacancy_id = v.id
		WHERE ($1 = '' OR p.role = $1)
		  AND ($2 = '' OR p.vacancy_id::text = $2)
		ORDER BY p.created_at DESC`, personColumns)

	rows, err := r.db.Query(ctx, query, filter.Role, filter.VacancyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var persons []domain.Person
	for rows.Next() {
		p, err := scanPersonWithVacancy(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, *p)
	}
	return persons, rows.Err()
}

// Update persists all mutable fields including the JSONB sub-objects
func (r *personRepo) Update(ctx context.Context, p *domain.Person) error {
	query := `
		UPDATE persons SET
			full_name = $2, email = $3, phone = $4, address = $5, education = $6,
			experience = $7, linked_in = $8, role = $9, status = $10,
			resume_url = $11, profile_image = $12, vacancy_id = $13,
			candidate_data = $14, employee_data = $15, activities = $16, updated_at = $17
		WHERE id = $1`

	p.UpdatedAt = time.Now()

	candidateData, employeeData, activities, err := marshalPersonJSON(p)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, p.ID,
		p.FullName, p.Email, p.Phone, p.Address, p.Education,
		p.Experience, nullable(p.LinkedIn), p.Role, p.Status,
		nullable(p.ResumeURL), nullable(p.ProfileImage), p.VacancyID,
		candidateData, employeeData, activities, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a person. Attached letters are intentionally left in place;
// they become unreachable rather than cascading.
func (r *personRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EmailExists checks the unique email constraint ahead of insert
func (r *personRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM persons WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// CountByRole counts persons holding the given role
func (r *personRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM persons WHERE role = $1`, role).Scan(&count)
	return count, err
}

// marshalPersonJSON encodes the JSONB columns. Nil sub-objects stay NULL so
// the role invariant remains visible in the data.
func marshalPersonJSON(p *domain.Person) ([]byte, []byte, []byte, error) {
	var candidateData, employeeData []byte
	var err error

	if p.CandidateData != nil {
		if candidateData, err = json.Marshal(p.CandidateData); err != nil {
			return nil, nil, nil, err
		}
	}
	if p.EmployeeData != nil {
		if employeeData, err = json.Marshal(p.EmployeeData); err != nil {
			return nil, nil, nil, err
		}
	}

	activities := p.Activities
	if activities == nil {
		activities = []domain.Activity{}
	}
	activitiesJSON, err := json.Marshal(activities)
	if err != nil {
		return nil, nil, nil, err
	}

	return candidateData, employeeData, activitiesJSON, nil
}

func scanPersonWithVacancy(row pgx.Row) (*domain.Person, error) {
	var p domain.Person
	var linkedIn, resumeURL, profileImage *string
	var candidateData, employeeData, activities []byte

	var vID, vName, vTitle, vDescription, vManager, vManagerEmail *string
	var vPositions *int
	var vActive *bool
	var vCreated, vUpdated *time.Time

	err := row.Scan(
		&p.ID, &p.FullName, &p.Email, &p.Phone, &p.Address, &p.Education, &p.Experience,
		&linkedIn, &p.Role, &p.Status, &resumeURL, &profileImage, &p.VacancyID,
		&candidateData, &employeeData, &activities, &p.CreatedAt, &p.UpdatedAt,
		&vID, &vName, &vTitle, &vDescription, &vPositions,
		&vActive, &vManager, &vManagerEmail, &vCreated, &vUpdated,
	)
	if err != nil {
		return nil, err
	}

	p.LinkedIn = deref(linkedIn)
	p.ResumeURL = deref(resumeURL)
	p.ProfileImage = deref(profileImage)

	if len(candidateData) > 0 {
		p.CandidateData = &domain.CandidateData{}
		if err := json.Unmarshal(candidateData, p.CandidateData); err != nil {
			return nil, err
		}
	}
	if len(employeeData) > 0 {
		p.EmployeeData = &domain.EmployeeData{}
		if err := json.Unmarshal(employeeData, p.EmployeeData); err != nil {
			return nil, err
		}
	}
	if len(activities) > 0 {
		if err := json.Unmarshal(activities, &p.Activities); err != nil {
			return nil, err
		}
	}

	if vID != nil {
		p.Vacancy = &domain.Vacancy{
			ID:                 *vID,
			VacancyName:        deref(vName),
			JobTitle:           deref(vTitle),
			Description:        deref(vDescription),
			IsActive:           vActive != nil && *vActive,
			HiringManager:      deref(vManager),
			HiringManagerEmail: deref(vManagerEmail),
		}
		if vPositions != nil {
			p.Vacancy.Positions = *vPositions
		}
		if vCreated != nil {
			p.Vacancy.CreatedAt = *vCreated
		}
		if vUpdated != nil {
			p.Vacancy.UpdatedAt = *vUpdated
		}
	}

	return &p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
