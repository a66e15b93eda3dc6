package services_test

import (
	"testing"

	"platefeed/internal/models"
	"platefeed/internal/repositories"
	"platefeed/internal/services"

	"github.com/stretchr/testify/assert"
)

// likeFixture wires a like service over in-memory repositories with one user
// and one post in place.
func likeFixture(t *testing.T) (*services.LikeService, *models.User, *models.Post) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	postRepo := repositories.NewMockPostRepository(userRepo)
	likeRepo := repositories.NewMockLikeRepository()

	user := &models.User{Username: "alice", Roles: models.Roles{"user"}}
	assert.NoError(t, userRepo.Create(user))

	post := &models.Post{Title: "Best ramen in town", Body: "Seriously.", UserID: user.ID}
	assert.NoError(t, postRepo.Create(post))

	return services.NewLikeService(likeRepo, postRepo, userRepo, nil), user, post
}

func TestLikeService_AddLike(t *testing.T) {
	likeService, user, post := likeFixture(t)

	like, err := likeService.AddLike(user.ID, post.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, like.ID)
	assert.Equal(t, user.ID, like.UserID)
	assert.Equal(t, post.ID, like.PostID)

	likes, err := likeService.ListLikes()
	assert.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestLikeService_DuplicateLike(t *testing.T) {
	likeService, user, post := likeFixture(t)

	_, err := likeService.AddLike(user.ID, post.ID)
	assert.NoError(t, err)

	_, err = likeService.AddLike(user.ID, post.ID)
	assert.ErrorIs(t, err, services.ErrDuplicateLike)

	likes, err := likeService.ListLikes()
	assert.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestLikeService_ReferentialChecks(t *testing.T) {
	likeService, user, post := likeFixture(t)

	_, err := likeService.AddLike("no-such-user", post.ID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = likeService.AddLike(user.ID, "no-such-post")
	assert.ErrorIs(t, err, services.ErrPostNotFound)
}

func TestLikeService_RemoveLikeIsIdempotent(t *testing.T) {
	likeService, user, post := likeFixture(t)

	// Removing a like that was never added succeeds.
	assert.NoError(t, likeService.RemoveLike(user.ID, post.ID))

	_, err := likeService.AddLike(user.ID, post.ID)
	assert.NoError(t, err)
	assert.NoError(t, likeService.RemoveLike(user.ID, post.ID))

	likes, err := likeService.ListLikes()
	assert.NoError(t, err)
	assert.Empty(t, likes)

	// And again, after the like is gone.
	assert.NoError(t, likeService.RemoveLike(user.ID, post.ID))

	// The pair can be liked again once the previous like is removed.
	_, err = likeService.AddLike(user.ID, post.ID)
	assert.NoError(t, err)
}
