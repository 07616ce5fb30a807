package service

import (
	"testing"

	"social-platform/internal/apperr"
	"social-platform/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLifecycle(t *testing.T) {
	db := newTestDB(t)
	alice := registerVerified(t, db, "Alice", "alice@example.com", "pw123456")
	bob := registerVerified(t, db, "Bob", "bob@example.com", "pw123456")

	svc := NewPostService(repository.NewPostRepository(db))

	post, err := svc.Create(alice.ID, "  hello world  ", "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", post.Content)

	liked, err := svc.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	_, err = svc.AddComment(bob.ID, post.ID, "nice one")
	require.NoError(t, err)

	feed, err := svc.Feed(bob.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.EqualValues(t, 1, feed[0].LikeCount)
	assert.True(t, feed[0].Liked)

	comments, err := svc.ListComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice one", comments[0].Content)
}

func TestDeletePostAuthorization(t *testing.T) {
	db := newTestDB(t)
	alice := registerVerified(t, db, "Alice", "alice@example.com", "pw123456")
	bob := registerVerified(t, db, "Bob", "bob@example.com", "pw123456")

	svc := NewPostService(repository.NewPostRepository(db))

	post, err := svc.Create(alice.ID, "mine", "")
	require.NoError(t, err)

	// A stranger cannot delete it.
	err = svc.Delete(post.ID, bob.ID, false)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// An admin can.
	require.NoError(t, svc.Delete(post.ID, bob.ID, true))

	_, err = svc.ListComments(post.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCommentOnMissingPost(t *testing.T) {
	db := newTestDB(t)
	alice := registerVerified(t, db, "Alice", "alice@example.com", "pw123456")

	svc := NewPostService(repository.NewPostRepository(db))

	_, err := svc.AddComment(alice.ID, 404, "into the void")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestEmptyPostContent(t *testing.T) {
	db := newTestDB(t)
	alice := registerVerified(t, db, "Alice", "alice@example.com", "pw123456")

	svc := NewPostService(repository.NewPostRepository(db))

	_, err := svc.Create(alice.ID, "   ", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.AddComment(alice.ID, 1, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
