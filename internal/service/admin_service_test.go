package service

import (
	"testing"

	"social-platform/internal/apperr"
	"social-platform/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStatsAndModeration(t *testing.T) {
	db := newTestDB(t)
	alice := registerVerified(t, db, "Alice", "alice@example.com", "pw123456")
	registerVerified(t, db, "Bob", "bob@example.com", "pw123456")

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	svc := NewAdminService(userRepo, postRepo)
	posts := NewPostService(postRepo)

	_, err := posts.Create(alice.ID, "post one", "")
	require.NoError(t, err)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalPosts)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	// Blocking shuts the account out of login.
	require.NoError(t, svc.SetBlocked(alice.ID, true))
	loginSvc := newUserService(t, db, false)
	_, _, err = loginSvc.Login("alice@example.com", "pw123456")
	assert.ErrorIs(t, err, apperr.ErrBlocked)

	require.NoError(t, svc.SetBlocked(alice.ID, false))
	_, _, err = loginSvc.Login("alice@example.com", "pw123456")
	assert.NoError(t, err)

	// Deleting removes the account and shrinks the stats.
	require.NoError(t, svc.DeleteUser(alice.ID))
	stats, err = svc.GetStats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.EqualValues(t, 0, stats.TotalPosts)
}
