package services

import (
	"fmt"
	"log"
	"strings"

	"platefeed/internal/models"
	"platefeed/internal/repositories"
)

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	Title    string
	Body     string
	Tags     models.Tags
	Rating   float64
	Location string
	Image    string
	UserID   string
}

// PostService handles creation, listing and deletion of posts.
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	blobs    BlobStore
	events   EventPublisher
}

// NewPostService creates a new PostService. The event publisher may be nil.
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, blobs BlobStore, events EventPublisher) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		blobs:    blobs,
		events:   events,
	}
}

// CreatePost persists a new post for an existing user. An image value that is
// already a full URL is stored as-is; anything else is treated as an object
// key inside the owner's bucket and resolved to a public URL.
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	log.Printf("[SERVICE] Creating post: %q by user %s", input.Title, input.UserID)

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", input.UserID, err)
	}
	if user == nil {
		log.Printf("[SERVICE] Post creation failed: user not found - %s", input.UserID)
		return nil, ErrUserNotFound
	}

	imagePath := ""
	if input.Image != "" {
		if strings.HasPrefix(input.Image, "http://") || strings.HasPrefix(input.Image, "https://") {
			imagePath = input.Image
		} else {
			imagePath = s.blobs.ObjectURL(BucketName(user.ID), input.Image)
		}
		log.Printf("[SERVICE] Image path for post %q: %s", input.Title, imagePath)
	}

	post := &models.Post{
		Title:     input.Title,
		Body:      input.Body,
		Tags:      input.Tags,
		Rating:    input.Rating,
		Location:  input.Location,
		ImagePath: imagePath,
		UserID:    user.ID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	publishEvent(s.events, "post.created", map[string]interface{}{
		"post_id": post.ID,
		"user_id": post.UserID,
		"title":   post.Title,
	})

	log.Printf("[SERVICE] Post created successfully: id %s", post.ID)
	return post, nil
}

// ListPosts returns all posts joined with their author's username, newest
// first.
func (s *PostService) ListPosts() ([]models.PostWithAuthor, error) {
	return s.postRepo.GetAllWithAuthor()
}

// DeletePost removes a post by id. Ownership is not checked and likes or
// comments on the post are left in place.
func (s *PostService) DeletePost(id string) error {
	log.Printf("[SERVICE] Deleting post: %s", id)
	if err := s.postRepo.Delete(id); err != nil {
		return err
	}
	publishEvent(s.events, "post.deleted", map[string]interface{}{"post_id": id})
	return nil
}
