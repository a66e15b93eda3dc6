package repositories

import "platefeed/internal/models"

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	GetAllWithAuthor() ([]models.PostWithAuthor, error)
	Delete(id string) error
}
