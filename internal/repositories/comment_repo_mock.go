package repositories

import (
	"sync"

	"platefeed/internal/models"

	"github.com/google/uuid"
)

// MockCommentRepository is an in-memory implementation of CommentRepository.
type MockCommentRepository struct {
	comments map[string]models.Comment
	mu       sync.RWMutex
}

// NewMockCommentRepository creates a new instance of MockCommentRepository.
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[string]models.Comment),
	}
}

// Create adds a new comment.
func (r *MockCommentRepository) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	r.comments[comment.ID] = *comment
	return nil
}

// GetAll returns all comments.
func (r *MockCommentRepository) GetAll() ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commentList := make([]models.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		commentList = append(commentList, c)
	}
	return commentList, nil
}

// Delete removes the user's comments on the given post, if any.
func (r *MockCommentRepository) Delete(userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.comments {
		if c.UserID == userID && c.PostID == postID {
			delete(r.comments, id)
		}
	}
	return nil
}
