package usecase

import (
	"testing"

	"edupress/internal/entity"
	"edupress/pkg/apperr"
	"edupress/pkg/jwt"
	"edupress/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase(userRepo *MockUserRepository) AuthUseCase {
	return NewAuthUseCase(userRepo, jwt.NewService("test-secret"), logger.New())
}

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByEmail", "student@edupress.io").Return(nil, nil)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	user, token, err := uc.Register("student@edupress.io", "Student", "password123")

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByEmail", "taken@edupress.io").Return(&entity.User{ID: "user-1"}, nil)

	_, _, err := uc.Register("taken@edupress.io", "Student", "password123")

	assert.ErrorIs(t, err, apperr.ErrConflict)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func storedUser(password string) *entity.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &entity.User{
		ID:       "user-1",
		Email:    "student@edupress.io",
		Name:     "Student",
		Password: string(hashed),
		Role:     entity.RoleStudent,
		IsActive: true,
	}
}

func TestLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByEmail", "student@edupress.io").Return(storedUser("password123"), nil)

	user, token, err := uc.Login("student@edupress.io", "password123")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NotEmpty(t, token)

	claims, err := jwt.NewService("test-secret").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByEmail", "student@edupress.io").Return(storedUser("password123"), nil)

	_, _, err := uc.Login("student@edupress.io", "wrong")

	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByEmail", "ghost@edupress.io").Return(nil, nil)

	_, _, err := uc.Login("ghost@edupress.io", "password123")

	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	user := storedUser("password123")
	user.IsActive = false
	userRepo.On("GetByEmail", "student@edupress.io").Return(user, nil)

	_, _, err := uc.Login("student@edupress.io", "password123")

	assert.EqualError(t, err, "account is deactivated")
}

func TestChangePassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByID", "user-1").Return(storedUser("oldpassword"), nil)
	userRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpassword")) == nil
	})).Return(nil)

	err := uc.ChangePassword("user-1", "oldpassword", "newpassword")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
