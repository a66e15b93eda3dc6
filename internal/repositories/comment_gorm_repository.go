package repositories

import (
	"fmt"

	"platefeed/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create persists a new comment, assigning an ID when absent.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetAll returns every comment.
func (r *GORMCommentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Delete removes the user's comments on the given post, if any.
func (r *GORMCommentRepository) Delete(userID, postID string) error {
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Comment{}).Error; err != nil {
		return fmt.Errorf("failed to delete comment for user %s on post %s: %w", userID, postID, err)
	}
	return nil
}
