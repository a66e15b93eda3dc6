package services

import (
	"fmt"
	"log"

	"platefeed/internal/models"
	"platefeed/internal/repositories"
)

// LikeService enforces the one-like-per-(user, post) rule and the referential
// checks around like creation.
type LikeService struct {
	likeRepo repositories.LikeRepository
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	events   EventPublisher
}

// NewLikeService creates a new LikeService. The event publisher may be nil.
func NewLikeService(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository, events EventPublisher) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
		events:   events,
	}
}

// AddLike records a like after checking that both the user and the post exist
// and that the pair has not already been liked. The unique index on the likes
// table backs this check up against concurrent requests.
func (s *LikeService) AddLike(userID, postID string) (*models.Like, error) {
	log.Printf("[SERVICE] Adding like by user %s on post %s", userID, postID)

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	if user == nil {
		log.Printf("[SERVICE] Like failed: user not found - %s", userID)
		return nil, ErrUserNotFound
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up post %s: %w", postID, err)
	}
	if post == nil {
		log.Printf("[SERVICE] Like failed: post not found - %s", postID)
		return nil, ErrPostNotFound
	}

	likes, err := s.likeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	for _, existing := range likes {
		if existing.UserID == userID && existing.PostID == postID {
			log.Printf("[SERVICE] Like failed: user %s already liked post %s", userID, postID)
			return nil, ErrDuplicateLike
		}
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(like); err != nil {
		return nil, err
	}

	publishEvent(s.events, "like.created", map[string]interface{}{
		"like_id": like.ID,
		"user_id": userID,
		"post_id": postID,
	})

	log.Printf("[SERVICE] Like added successfully: id %s", like.ID)
	return like, nil
}

// ListLikes returns all likes.
func (s *LikeService) ListLikes() ([]models.Like, error) {
	return s.likeRepo.GetAll()
}

// RemoveLike deletes the like for the pair. Removing a like that does not
// exist succeeds silently.
func (s *LikeService) RemoveLike(userID, postID string) error {
	log.Printf("[SERVICE] Removing like by user %s on post %s", userID, postID)
	if err := s.likeRepo.Delete(userID, postID); err != nil {
		return err
	}
	publishEvent(s.events, "like.removed", map[string]interface{}{
		"user_id": userID,
		"post_id": postID,
	})
	return nil
}
