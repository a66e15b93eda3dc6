package repositories

import (
	"sort"
	"sync"

	"platefeed/internal/models"

	"github.com/google/uuid"
)

// MockPostRepository is an in-memory implementation of PostRepository. It
// resolves usernames for the listing join through the given user repository,
// which may be nil.
type MockPostRepository struct {
	posts map[string]models.Post
	users UserRepository
	mu    sync.RWMutex
}

// NewMockPostRepository creates a new instance of MockPostRepository.
func NewMockPostRepository(users UserRepository) *MockPostRepository {
	return &MockPostRepository{
		posts: make(map[string]models.Post),
		users: users,
	}
}

// Create adds a new post.
func (r *MockPostRepository) Create(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts[post.ID] = *post
	return nil
}

// GetByID returns the post with the given ID, or nil.
func (r *MockPostRepository) GetByID(id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

// GetAllWithAuthor returns all posts with their owner's username, newest first.
func (r *MockPostRepository) GetAllWithAuthor() ([]models.PostWithAuthor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	postList := make([]models.PostWithAuthor, 0, len(r.posts))
	for _, p := range r.posts {
		entry := models.PostWithAuthor{Post: p}
		if r.users != nil {
			if user, err := r.users.GetByID(p.UserID); err == nil && user != nil {
				entry.Username = user.Username
			}
		}
		postList = append(postList, entry)
	}
	sort.Slice(postList, func(i, j int) bool {
		return postList[i].CreatedAt.After(postList[j].CreatedAt)
	})
	return postList, nil
}

// Delete removes a post by ID.
func (r *MockPostRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.posts, id)
	return nil
}
