package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Person role constants. A person starts as a candidate and becomes an
// employee when their application is accepted; the role is a mutable field,
// not a separate record type.
const (
	RoleCandidate = "candidate"
	RoleEmployee  = "employee"
)

// Person status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Decision values accepted by the candidate decision workflow
const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

// CandidateData is present while role=candidate
type CandidateData struct {
	ApplicationStatus bool   `json:"applicationStatus"`
	Notes             string `json:"notes,omitempty"`
}

// EmployeeData is present once role=employee. PerformanceScore is kept as a
// one-decimal string and is absent until the first activity is recorded.
type EmployeeData struct {
	Department       string    `json:"department,omitempty"`
	HireDate         time.Time `json:"hireDate"`
	PerformanceScore string    `json:"performanceScore,omitempty"`
}

// Activity is a performance entry appended to an employee's record
type Activity struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Performance int       `json:"performance"` // 1-5
}

// Person unifies candidate and employee as role-tagged variants of one record
type Person struct {
	ID           string         `json:"id"`
	FullName     string         `json:"fullName"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Education    string         `json:"education"`
	Experience   string         `json:"experience"`
	LinkedIn     string         `json:"linkedIn,omitempty"`
	Role         string         `json:"role"`
	Status       string         `json:"status"`
	ResumeURL    string         `json:"resume,omitempty"`
	ProfileImage string         `json:"profileImage,omitempty"`
	VacancyID    *string        `json:"vacancyId,omitempty"`
	CandidateData *CandidateData `json:"candidateData,omitempty"`
	EmployeeData  *EmployeeData  `json:"employeeData,omitempty"`
	Activities    []Activity     `json:"activities,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	// Populated references (not stored on the person row)
	Vacancy *Vacancy `json:"vacancy,omitempty"`
	Letters []Letter `json:"letters,omitempty"`
}

// CandidateView is the candidate-shaped reading of a Person. Constructing it
// validates that the record carries the sub-object its role requires.
type CandidateView struct {
	*Person
}

// EmployeeView is the employee-shaped reading of a Person.
type EmployeeView struct {
	*Person
}

// AsCandidate returns the candidate view, or an error if the record is not a
// well-formed candidate.
func (p *Person) AsCandidate() (*CandidateView, error) {
	if p.Role != RoleCandidate {
		return nil, fmt.Errorf("person %s has role %q, not candidate", p.ID, p.Role)
	}
	if p.CandidateData == nil {
		return nil, fmt.Errorf("candidate %s is missing candidateData", p.ID)
	}
	return &CandidateView{p}, nil
}

// AsEmployee returns the employee view, or an error if the record is not a
// well-formed employee.
func (p *Person) AsEmployee() (*EmployeeView, error) {
	if p.Role != RoleEmployee {
		return nil, fmt.Errorf("person %s has role %q, not employee", p.ID, p.Role)
	}
	if p.EmployeeData == nil {
		return nil, fmt.Errorf("employee %s is missing employeeData", p.ID)
	}
	return &EmployeeView{p}, nil
}

// AppendActivity adds the activity and synchronously recomputes the running
// performance score: the mean of all activity ratings rounded to one decimal.
// Returns the new score string.
func (p *Person) AppendActivity(act Activity) string {
	p.Activities = append(p.Activities, act)

	total := 0
	for _, a := range p.Activities {
		total += a.Performance
	}
	avg := math.Round(float64(total)/float64(len(p.Activities))*10) / 10
	score := fmt.Sprintf("%.1f", avg)

	if p.EmployeeData == nil {
		p.EmployeeData = &EmployeeData{}
	}
	p.EmployeeData.PerformanceScore = score
	return score
}

// PersonFilter narrows person list queries
type PersonFilter struct {
	Role      string
	VacancyID string
}

// PersonRepository defines data access for persons
type PersonRepository interface {
	Create(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, id string) (*Person, error)
	List(ctx context.Context, filter PersonFilter) ([]Person, error)
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, id string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// CandidateApplication is the intake payload for a new candidate
type CandidateApplication struct {
	FullName   string `validate:"required,min=2,max=100,valid_name"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"required,valid_phone"`
	Address    string `validate:"required"`
	Education  string `validate:"required"`
	Experience string `validate:"required"`
	LinkedIn   string `validate:"omitempty,url"`
	Notes      string `validate:"max=2000"`
	VacancyID  string `validate:"required"`
	ResumeName string
	ResumeData []byte
}

// DecisionResult is returned by the candidate decision workflow
type DecisionResult struct {
	Person   *Person `json:"person,omitempty"`
	Message  string  `json:"message"`
	Redirect string  `json:"redirect,omitempty"`
}

// CandidateUsecase covers application intake and the decision workflow
type CandidateUsecase interface {
	Apply(ctx context.Context, app CandidateApplication) (*Person, error)
	List(ctx context.Context, vacancyID string) ([]Person, error)
	GetByID(ctx context.Context, id string) (*Person, error)
	Decide(ctx context.Context, candidateID, fullName, email, decision string) (*DecisionResult, error)
}

// EmployeeUpdate carries mutable profile fields; letter and activity state is
// never editable through profile updates.
type EmployeeUpdate struct {
	FullName         string
	Email            string
	Phone            string
	Address          string
	Education        string
	Experience       string
	LinkedIn         string
	Status           string
	Department       string
	ProfileImageName string
	ProfileImageData []byte
}

// EmployeeUsecase covers employee records and performance activities
type EmployeeUsecase interface {
	List(ctx context.Context) ([]Person, error)
	GetByID(ctx context.Context, id string) (*Person, error)
	Update(ctx context.Context, id string, upd EmployeeUpdate) (*Person, error)
	Delete(ctx context.Context, id string) error
	AddActivity(ctx context.Context, id string, actType, description string, performance int) (*Activity, string, error)
	ExportRoster(ctx context.Context) ([]byte, string, error)
	EmailHistory(ctx context.Context, id string) ([]EmailEntry, error)
}
