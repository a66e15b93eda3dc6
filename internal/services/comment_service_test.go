package services_test

import (
	"testing"

	"platefeed/internal/models"
	"platefeed/internal/repositories"
	"platefeed/internal/services"

	"github.com/stretchr/testify/assert"
)

func commentFixture(t *testing.T) (*services.CommentService, *models.User, *models.Post) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	postRepo := repositories.NewMockPostRepository(userRepo)
	commentRepo := repositories.NewMockCommentRepository()

	user := &models.User{Username: "alice", Roles: models.Roles{"user"}}
	assert.NoError(t, userRepo.Create(user))

	post := &models.Post{Title: "Dumpling crawl", Body: "b", UserID: user.ID}
	assert.NoError(t, postRepo.Create(post))

	return services.NewCommentService(commentRepo, postRepo, userRepo, nil), user, post
}

func TestCommentService_CreateComment(t *testing.T) {
	commentService, user, post := commentFixture(t)

	comment, err := commentService.CreateComment(user.ID, post.ID, "Totally agree about the soup ones")
	assert.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, user.ID, comment.UserID)
	assert.Equal(t, post.ID, comment.PostID)

	comments, err := commentService.ListComments()
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCommentService_EmptyMessage(t *testing.T) {
	commentService, user, post := commentFixture(t)

	_, err := commentService.CreateComment(user.ID, post.ID, "")
	assert.ErrorIs(t, err, services.ErrEmptyMessage)

	_, err = commentService.CreateComment(user.ID, post.ID, "   \t\n")
	assert.ErrorIs(t, err, services.ErrEmptyMessage)
}

func TestCommentService_ReferentialChecks(t *testing.T) {
	commentService, user, post := commentFixture(t)

	_, err := commentService.CreateComment("no-such-user", post.ID, "hi")
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = commentService.CreateComment(user.ID, "no-such-post", "hi")
	assert.ErrorIs(t, err, services.ErrPostNotFound)
}

func TestCommentService_DeleteByPair(t *testing.T) {
	commentService, user, post := commentFixture(t)

	_, err := commentService.CreateComment(user.ID, post.ID, "first")
	assert.NoError(t, err)
	_, err = commentService.CreateComment(user.ID, post.ID, "second")
	assert.NoError(t, err)

	// The delete is keyed by the pair, so both comments go.
	assert.NoError(t, commentService.DeleteComment(user.ID, post.ID))
	comments, err := commentService.ListComments()
	assert.NoError(t, err)
	assert.Empty(t, comments)

	// Deleting with nothing to delete still succeeds.
	assert.NoError(t, commentService.DeleteComment(user.ID, post.ID))
}
