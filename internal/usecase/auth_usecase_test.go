package usecase_test

import (
	"context"
	"testing"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/internal/usecase"
	"go-hrms-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testJWTSecret      = "test-secret"
	testInvitationCode = "join-hr-2026"
)

func newAuthFixtures() (*MockHRUserRepo, *MockFileStore, domain.AuthUsecase) {
	userRepo := new(MockHRUserRepo)
	store := new(MockFileStore)
	validate := validator.New()
	validation.RegisterValidators(validate)
	uc := usecase.NewAuthUsecase(userRepo, store, validate, testJWTSecret, testInvitationCode)
	return userRepo, store, uc
}

func TestSignupRejectsBadInvitationCode(t *testing.T) {
	userRepo, _, uc := newAuthFixtures()

	_, err := uc.Signup(context.Background(), "Alice HR", "alice@example.com", "supersecret", "wrong-code")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid invitation code")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	userRepo, _, uc := newAuthFixtures()

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.HRUser{ID: "hr-1", Email: "alice@example.com"}, nil)

	_, err := uc.Signup(context.Background(), "Alice HR", "alice@example.com", "supersecret", testInvitationCode)

	assert.Error(t, err)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupHashesPassword(t *testing.T) {
	userRepo, _, uc := newAuthFixtures()

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.HRUser")).Return(nil)

	user, err := uc.Signup(context.Background(), "Alice HR", "alice@example.com", "supersecret", testInvitationCode)

	assert.NoError(t, err)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestSigninWrongPassword(t *testing.T) {
	userRepo, _, uc := newAuthFixtures()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.HRUser{
		ID:           "hr-1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, _, err := uc.Signin(context.Background(), "alice@example.com", "wrongpassword")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestSigninUnknownEmailSameError(t *testing.T) {
	userRepo, _, uc := newAuthFixtures()

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, _, err := uc.Signin(context.Background(), "ghost@example.com", "whatever")

	assert.Error(t, err)
	// same message as a wrong password so the response does not leak which accounts exist
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestSigninIssuesHS256Token(t *testing.T) {
	userRepo, _, uc := newAuthFixtures()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.HRUser{
		ID:           "hr-1",
		Name:         "Alice HR",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, tokenString, err := uc.Signin(context.Background(), "alice@example.com", "rightpassword")

	assert.NoError(t, err)
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "hr-1", claims["id"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "Alice HR", claims["name"])
}

func TestUpdateProfileUploadsImage(t *testing.T) {
	userRepo, store, uc := newAuthFixtures()

	userRepo.On("GetByID", mock.Anything, "hr-1").Return(&domain.HRUser{ID: "hr-1", Name: "Alice"}, nil)
	// png magic bytes so the image passes validation
	pngData := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, []byte("fake")...)
	store.On("Upload", mock.Anything, "profile-images", "avatar.png", "image/png", pngData).Return("https://bucket/profile-images/avatar.png", nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.HRUser")).Return(nil)

	user, err := uc.UpdateProfile(context.Background(), "hr-1", domain.HRProfileUpdate{
		About:            "HR generalist",
		ProfileImageName: "avatar.png",
		ProfileImageData: pngData,
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://bucket/profile-images/avatar.png", user.ProfileImage)
	assert.Equal(t, "HR generalist", user.About)
}
