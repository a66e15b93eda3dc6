package repositories

import (
	"fmt"

	"platefeed/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMLikeRepository is a GORM implementation of LikeRepository.
type GORMLikeRepository struct {
	db *gorm.DB
}

// NewGORMLikeRepository creates a new instance of GORMLikeRepository.
func NewGORMLikeRepository(db *gorm.DB) *GORMLikeRepository {
	return &GORMLikeRepository{
		db: db,
	}
}

// Create persists a new like, assigning an ID when absent. The unique index
// on (user_id, post_id) rejects concurrent duplicates the service check missed.
func (r *GORMLikeRepository) Create(like *models.Like) error {
	if like.ID == "" {
		like.ID = uuid.New().String()
	}
	if err := r.db.Create(like).Error; err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// GetAll returns every like.
func (r *GORMLikeRepository) GetAll() ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	return likes, nil
}

// Delete removes the like for the given pair, if any.
func (r *GORMLikeRepository) Delete(userID, postID string) error {
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error; err != nil {
		return fmt.Errorf("failed to delete like for user %s on post %s: %w", userID, postID, err)
	}
	return nil
}
