package repositories

import (
	"fmt"

	"platefeed/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// Create persists a new post, assigning an ID when absent.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its ID.
func (r *GORMPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post by ID %s: %w", id, err)
	}
	return &post, nil
}

// GetAllWithAuthor returns all posts joined with the owning user's username,
// newest first.
func (r *GORMPostRepository) GetAllWithAuthor() ([]models.PostWithAuthor, error) {
	var posts []models.PostWithAuthor
	err := r.db.Table("posts").
		Select("posts.*, users.username").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Delete removes a post by ID. Deleting a missing post is not an error.
func (r *GORMPostRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Post{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	return nil
}
