package repository

import (
	"testing"

	"social-platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	post := &model.Post{UserID: alice.ID, Content: "hello"}
	require.NoError(t, repo.Create(post))

	liked, err := repo.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	var count int64
	db.Model(&model.Like{}).Count(&count)
	assert.Zero(t, count)
}

func TestFeedAnnotations(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")

	post := &model.Post{UserID: alice.ID, Content: "feed me"}
	require.NoError(t, repo.Create(post))

	_, err := repo.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)
	_, err = repo.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)

	items, err := repo.Feed(bob.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "feed me", items[0].Content)
	assert.Equal(t, "Alice", items[0].AuthorName)
	assert.EqualValues(t, 2, items[0].LikeCount)
	assert.True(t, items[0].Liked)

	items, err = repo.Feed(0) // anonymous viewer id never matches
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Liked)
}

func TestDeletePostRemovesLikesAndComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	post := &model.Post{UserID: alice.ID, Content: "bye"}
	require.NoError(t, repo.Create(post))
	_, err := repo.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)
	require.NoError(t, repo.CreateComment(&model.Comment{UserID: alice.ID, PostID: post.ID, Content: "c"}))

	require.NoError(t, repo.Delete(post.ID))

	var count int64
	db.Model(&model.Post{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Like{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Comment{}).Count(&count)
	assert.Zero(t, count)
}

func TestListCommentsOrderedOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	post := &model.Post{UserID: alice.ID, Content: "discuss"}
	require.NoError(t, repo.Create(post))

	for _, content := range []string{"first", "second", "third"} {
		require.NoError(t, repo.CreateComment(&model.Comment{
			UserID: alice.ID, PostID: post.ID, Content: content,
		}))
	}

	comments, err := repo.ListComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "third", comments[2].Content)
	assert.Equal(t, "Alice", comments[0].AuthorName)
}
