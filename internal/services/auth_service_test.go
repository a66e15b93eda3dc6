package services_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"platefeed/internal/models"
	"platefeed/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           "user-123",
		Username:     "alice",
		PasswordHash: string(hashedPassword),
		Roles:        models.Roles{"user"},
	}

	// Successful login returns a token carrying the stored identity.
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	token, err := authService.Login("alice", "pw123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-123", claims["sub"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, []interface{}{"user"}, claims["roles"])
	mockRepo.AssertExpectations(t)

	// Wrong password fails closed with ErrInvalidCredentials.
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	_, err = authService.Login("alice", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown username fails closed too, with the same error.
	mockRepo.On("GetByUsername", "nobody").Return(nil, nil).Once()
	_, err = authService.Login("nobody", "pw123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// A store failure is not ErrInvalidCredentials.
	mockRepo.On("GetByUsername", "alice").Return(nil, errors.New("connection refused")).Once()
	_, err = authService.Login("alice", "pw123")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, services.ErrInvalidCredentials))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	user := &models.User{
		ID:       "user-123",
		Username: "alice",
		Roles:    models.Roles{"user", "admin"},
	}

	// Round-trip: an issued token resolves back to the same identity.
	tokenString, err := authService.IssueToken(user)
	assert.NoError(t, err)

	identity, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", identity.ID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, models.Roles{"user", "admin"}, identity.Roles)

	// Garbage is rejected.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	otherService := services.NewAuthService(mockRepo, "other_secret", time.Hour)
	foreignToken, err := otherService.IssueToken(user)
	assert.NoError(t, err)
	_, err = authService.ValidateToken(foreignToken)
	assert.Error(t, err)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "user-123",
		"username": "alice",
		"roles":    []string{"user"},
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, err := expiredToken.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)

	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
}
