package usecase

import (
	"context"
	"errors"
	"time"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"
	"go-hrms-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo       domain.HRUserRepository
	store          domain.FileStore
	validate       *validator.Validate
	jwtSecret      string
	invitationCode string
}

// NewAuthUsecase wires HR account management. The invitation code gates
// signup; there is no open registration.
func NewAuthUsecase(userRepo domain.HRUserRepository, store domain.FileStore, validate *validator.Validate, jwtSecret, invitationCode string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:       userRepo,
		store:          store,
		validate:       validate,
		jwtSecret:      jwtSecret,
		invitationCode: invitationCode,
	}
}

type signupInput struct {
	Name     string `validate:"required,min=2,max=100,valid_name"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

func (u *authUsecase) Signup(ctx context.Context, name, email, password, invitationCode string) (*domain.HRUser, error) {
	if invitationCode != u.invitationCode {
		return nil, apperror.Forbidden("Invalid invitation code")
	}

	if err := u.validate.Struct(signupInput{Name: name, Email: email, Password: password}); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.HRUser{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) Signin(ctx context.Context, email, password string) (*domain.HRUser, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.signToken(user)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) signToken(user *domain.HRUser) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.jwtSecret))
}

func (u *authUsecase) GetProfile(ctx context.Context, userID string) (*domain.HRUser, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("HR user not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID string, upd domain.HRProfileUpdate) (*domain.HRUser, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("HR user not found")
		}
		return nil, apperror.Internal(err)
	}

	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Email != "" {
		user.Email = upd.Email
	}
	if upd.Phone != "" {
		user.Phone = upd.Phone
	}
	if upd.Position != "" {
		user.Position = upd.Position
	}
	if upd.Department != "" {
		user.Department = upd.Department
	}
	if upd.Experience != "" {
		user.Experience = upd.Experience
	}
	if upd.About != "" {
		user.About = upd.About
	}

	if len(upd.ProfileImageData) > 0 {
		if err := upload.ValidateImage(upd.ProfileImageName, upd.ProfileImageData); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		url, err := u.store.Upload(ctx, "profile-images", upd.ProfileImageName, upload.ContentType(upd.ProfileImageName), upd.ProfileImageData)
		if err != nil {
			return nil, apperror.Upstream("Failed to upload profile image", err)
		}
		user.ProfileImage = url
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}
