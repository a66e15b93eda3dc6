package repositories

import "platefeed/internal/models"

// LikeRepository defines the interface for like data access.
type LikeRepository interface {
	Create(like *models.Like) error
	GetAll() ([]models.Like, error)
	// Delete removes the like matching (userID, postID). Removing a like
	// that does not exist is not an error.
	Delete(userID, postID string) error
}
