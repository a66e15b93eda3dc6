package services

import (
	"context"
	"fmt"
	"log"

	"platefeed/internal/models"
	"platefeed/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, listing and deletion of users, including
// per-user bucket provisioning in the blob store.
type UserService struct {
	userRepo repositories.UserRepository
	blobs    BlobStore
	events   EventPublisher
}

// NewUserService creates a new UserService. The event publisher may be nil.
func NewUserService(userRepo repositories.UserRepository, blobs BlobStore, events EventPublisher) *UserService {
	return &UserService{
		userRepo: userRepo,
		blobs:    blobs,
		events:   events,
	}
}

// BucketName returns the deterministic bucket name for a user id.
func BucketName(userID string) string {
	return "user-" + userID
}

// CreateUser registers a new user and provisions their bucket. Roles default
// to {"user"}. If the bucket provisioning fails the already persisted user is
// not rolled back; the error propagates and a retry will see the duplicate.
func (s *UserService) CreateUser(ctx context.Context, username, password string, roles models.Roles) (*models.User, string, error) {
	log.Printf("[SERVICE] Creating user: %s with roles: %v", username, roles)

	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check username %s: %w", username, err)
	}
	if existing != nil {
		log.Printf("[SERVICE] User creation failed: username already exists - %s", username)
		return nil, "", ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if len(roles) == 0 {
		roles = models.Roles{"user"}
	}
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	bucket := BucketName(user.ID)
	log.Printf("[SERVICE] Provisioning bucket for user: %s", bucket)
	if err := s.blobs.EnsureBucket(ctx, bucket); err != nil {
		// The user row stays; callers must treat a retry as ambiguous.
		return nil, "", fmt.Errorf("failed to provision bucket %s: %w", bucket, err)
	}

	publishEvent(s.events, "user.created", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"bucket":   bucket,
	})

	log.Printf("[SERVICE] User created successfully: %s (id: %s, bucket: %s)", username, user.ID, bucket)
	return user, bucket, nil
}

// DeleteUser removes a user by id. The user's posts, likes and comments are
// left in place.
func (s *UserService) DeleteUser(id string) error {
	log.Printf("[SERVICE] Deleting user: %s", id)
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	publishEvent(s.events, "user.deleted", map[string]interface{}{"user_id": id})
	return nil
}

// ListUsers returns all users. Password hashes are excluded from the
// serialized form by the model.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUser returns the user with the given username, or nil.
func (s *UserService) GetUser(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}
