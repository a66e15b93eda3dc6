package services

import (
	"fmt"
	"log"
	"time"

	"platefeed/internal/models"
	"platefeed/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the resolved subject of a verified token.
type Identity struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Roles    models.Roles `json:"roles"`
}

// AuthService issues and verifies bearer tokens and performs login.
// Verification is stateless; there is no revocation list, tokens stay valid
// until they expire.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login authenticates a user and returns a signed token. Unknown usernames
// and wrong passwords both fail closed with ErrInvalidCredentials so callers
// can distinguish bad credentials from unexpected failures.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	if user == nil {
		log.Printf("[AUTH] Login failed: user not found - %s", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[AUTH] Login failed: invalid password for user - %s", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", err
	}
	log.Printf("[AUTH] Login successful for user: %s (id: %s)", username, user.ID)
	return token, nil
}

// IssueToken produces a signed token embedding the user's id, username and
// roles, expiring after the configured TTL.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"roles":    []string(user.Roles),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies a token's signature and expiry and returns the
// embedded identity.
func (s *AuthService) ValidateToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	identity := &Identity{}
	if sub, ok := claims["sub"].(string); ok {
		identity.ID = sub
	}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, raw := range rawRoles {
			if role, ok := raw.(string); ok {
				identity.Roles = append(identity.Roles, role)
			}
		}
	}
	if identity.ID == "" {
		return nil, fmt.Errorf("invalid token: missing subject")
	}
	return identity, nil
}
