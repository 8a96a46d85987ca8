package domain

import (
	"context"
	"time"
)

// HRUser is an HR staff account. These are the only authenticated users of
// the system; candidates and employees never log in.
type HRUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Position     string    `json:"position,omitempty"`
	Department   string    `json:"department,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	About        string    `json:"about,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HRUserRepository defines data access for HR accounts
type HRUserRepository interface {
	Create(ctx context.Context, u *HRUser) error
	GetByEmail(ctx context.Context, email string) (*HRUser, error)
	GetByID(ctx context.Context, id string) (*HRUser, error)
	Update(ctx context.Context, u *HRUser) error
}

// HRProfileUpdate carries editable HR profile fields
type HRProfileUpdate struct {
	Name             string
	Email            string
	Phone            string
	Position         string
	Department       string
	Experience       string
	About            string
	ProfileImageName string
	ProfileImageData []byte
}

// AuthUsecase covers HR signup, signin and profile management
type AuthUsecase interface {
	// Signup creates an HR account; gated by the shared invitation code.
	Signup(ctx context.Context, name, email, password, invitationCode string) (*HRUser, error)
	// Signin verifies credentials and returns the account plus a signed token.
	Signin(ctx context.Context, email, password string) (*HRUser, string, error)
	GetProfile(ctx context.Context, userID string) (*HRUser, error)
	UpdateProfile(ctx context.Context, userID string, upd HRProfileUpdate) (*HRUser, error)
}
