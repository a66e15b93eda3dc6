package services

import (
	"fmt"
	"log"
	"strings"

	"platefeed/internal/models"
	"platefeed/internal/repositories"
)

// CommentService enforces the referential and message checks around comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	userRepo    repositories.UserRepository
	events      EventPublisher
}

// NewCommentService creates a new CommentService. The event publisher may be nil.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository, events EventPublisher) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		events:      events,
	}
}

// CreateComment records a comment after checking that both referenced
// entities exist and that the message is not blank.
func (s *CommentService) CreateComment(userID, postID, message string) (*models.Comment, error) {
	log.Printf("[SERVICE] Creating comment by user %s on post %s", userID, postID)

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	if user == nil {
		log.Printf("[SERVICE] Comment creation failed: user not found - %s", userID)
		return nil, ErrUserNotFound
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up post %s: %w", postID, err)
	}
	if post == nil {
		log.Printf("[SERVICE] Comment creation failed: post not found - %s", postID)
		return nil, ErrPostNotFound
	}

	if strings.TrimSpace(message) == "" {
		log.Printf("[SERVICE] Comment creation failed: empty message")
		return nil, ErrEmptyMessage
	}

	comment := &models.Comment{UserID: userID, PostID: postID, Message: message}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	publishEvent(s.events, "comment.created", map[string]interface{}{
		"comment_id": comment.ID,
		"user_id":    userID,
		"post_id":    postID,
	})

	log.Printf("[SERVICE] Comment created successfully: id %s", comment.ID)
	return comment, nil
}

// ListComments returns all comments.
func (s *CommentService) ListComments() ([]models.Comment, error) {
	return s.commentRepo.GetAll()
}

// DeleteComment removes the user's comments on the given post. The delete is
// keyed by the pair, not by comment id.
func (s *CommentService) DeleteComment(userID, postID string) error {
	log.Printf("[SERVICE] Deleting comment by user %s on post %s", userID, postID)
	if err := s.commentRepo.Delete(userID, postID); err != nil {
		return err
	}
	publishEvent(s.events, "comment.deleted", map[string]interface{}{
		"user_id": userID,
		"post_id": postID,
	})
	return nil
}
