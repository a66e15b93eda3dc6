package services_test

import (
	"testing"
	"time"

	"platefeed/internal/models"
	"platefeed/internal/repositories"
	"platefeed/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestPostService_CreatePost(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	postRepo := repositories.NewMockPostRepository(userRepo)
	postService := services.NewPostService(postRepo, userRepo, &stubBlobStore{}, nil)

	user := &models.User{Username: "alice", Roles: models.Roles{"user"}}
	assert.NoError(t, userRepo.Create(user))

	post, err := postService.CreatePost(services.CreatePostInput{
		Title:    "Hidden taco spot",
		Body:     "Order the al pastor.",
		Tags:     models.Tags{"tacos", "cheap-eats"},
		Rating:   4.5,
		Location: "East side",
		UserID:   user.ID,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, user.ID, post.UserID)
	assert.Empty(t, post.ImagePath)
}

func TestPostService_CreatePost_UserNotFound(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	postRepo := repositories.NewMockPostRepository(userRepo)
	postService := services.NewPostService(postRepo, userRepo, &stubBlobStore{}, nil)

	_, err := postService.CreatePost(services.CreatePostInput{
		Title:  "Ghost post",
		Body:   "No author.",
		UserID: "no-such-user",
	})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestPostService_ImageResolution(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	postRepo := repositories.NewMockPostRepository(userRepo)
	postService := services.NewPostService(postRepo, userRepo, &stubBlobStore{}, nil)

	user := &models.User{Username: "alice", Roles: models.Roles{"user"}}
	assert.NoError(t, userRepo.Create(user))

	// A full URL is stored as-is.
	post, err := postService.CreatePost(services.CreatePostInput{
		Title:  "With external image",
		Body:   "body",
		Image:  "https://cdn.example.com/pic.jpg",
		UserID: user.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/pic.jpg", post.ImagePath)

	// An object key resolves into the owner's bucket namespace.
	post, err = postService.CreatePost(services.CreatePostInput{
		Title:  "With uploaded image",
		Body:   "body",
		Image:  "posts/pic.jpg",
		UserID: user.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "http://blobs.local/user-"+user.ID+"/posts/pic.jpg", post.ImagePath)
}

func TestPostService_ListPostsNewestFirstWithAuthor(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	postRepo := repositories.NewMockPostRepository(userRepo)
	postService := services.NewPostService(postRepo, userRepo, &stubBlobStore{}, nil)

	user := &models.User{Username: "alice", Roles: models.Roles{"user"}}
	assert.NoError(t, userRepo.Create(user))

	older := &models.Post{Title: "First review", Body: "b", UserID: user.ID, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Post{Title: "Second review", Body: "b", UserID: user.ID, CreatedAt: time.Now()}
	assert.NoError(t, postRepo.Create(older))
	assert.NoError(t, postRepo.Create(newer))

	posts, err := postService.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "Second review", posts[0].Title)
	assert.Equal(t, "First review", posts[1].Title)
	assert.Equal(t, "alice", posts[0].Username)
	assert.Equal(t, "alice", posts[1].Username)
}

func TestPostService_DeletePost(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	postRepo := repositories.NewMockPostRepository(userRepo)
	postService := services.NewPostService(postRepo, userRepo, &stubBlobStore{}, nil)

	user := &models.User{Username: "alice", Roles: models.Roles{"user"}}
	assert.NoError(t, userRepo.Create(user))
	post := &models.Post{Title: "Short lived", Body: "b", UserID: user.ID}
	assert.NoError(t, postRepo.Create(post))

	assert.NoError(t, postService.DeletePost(post.ID))
	posts, err := postService.ListPosts()
	assert.NoError(t, err)
	assert.Empty(t, posts)

	// Deleting a missing post succeeds unconditionally.
	assert.NoError(t, postService.DeletePost("no-such-post"))
}
