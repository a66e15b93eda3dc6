package repositories

import "platefeed/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetAll() ([]models.Comment, error)
	// Delete removes the user's comments on the given post. The contract is
	// keyed by the pair, not by comment id.
	Delete(userID, postID string) error
}
