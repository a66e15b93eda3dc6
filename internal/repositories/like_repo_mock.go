package repositories

import (
	"sync"

	"platefeed/internal/models"

	"github.com/google/uuid"
)

// MockLikeRepository is an in-memory implementation of LikeRepository.
type MockLikeRepository struct {
	likes map[string]models.Like
	mu    sync.RWMutex
}

// NewMockLikeRepository creates a new instance of MockLikeRepository.
func NewMockLikeRepository() *MockLikeRepository {
	return &MockLikeRepository{
		likes: make(map[string]models.Like),
	}
}

// Create adds a new like.
func (r *MockLikeRepository) Create(like *models.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if like.ID == "" {
		like.ID = uuid.New().String()
	}
	r.likes[like.ID] = *like
	return nil
}

// GetAll returns all likes.
func (r *MockLikeRepository) GetAll() ([]models.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	likeList := make([]models.Like, 0, len(r.likes))
	for _, l := range r.likes {
		likeList = append(likeList, l)
	}
	return likeList, nil
}

// Delete removes the like matching the pair, if present.
func (r *MockLikeRepository) Delete(userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.likes {
		if l.UserID == userID && l.PostID == postID {
			delete(r.likes, id)
		}
	}
	return nil
}
