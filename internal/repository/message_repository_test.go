package repository

import (
	"testing"
	"time"

	"social-platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryContainsAppendedMessage(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")

	msg := &model.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "hi"}
	require.NoError(t, repo.Create(msg))
	require.NotZero(t, msg.ID)

	history, err := repo.History(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, alice.ID, history[0].SenderID)
	assert.Equal(t, bob.ID, history[0].ReceiverID)
}

func TestHistoryIsSymmetric(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")

	require.NoError(t, repo.Create(&model.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "one"}))
	require.NoError(t, repo.Create(&model.Message{SenderID: bob.ID, ReceiverID: alice.ID, Content: "two"}))

	fromAlice, err := repo.History(alice.ID, bob.ID)
	require.NoError(t, err)
	fromBob, err := repo.History(bob.ID, alice.ID)
	require.NoError(t, err)

	require.Equal(t, len(fromAlice), len(fromBob))
	for i := range fromAlice {
		assert.Equal(t, fromAlice[i].ID, fromBob[i].ID)
	}
}

func TestHistoryPreservesInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")

	// Same timestamp on every row forces the id tiebreak.
	now := time.Now().Truncate(time.Second)
	contents := []string{"first", "second", "third", "fourth"}
	for _, content := range contents {
		require.NoError(t, repo.Create(&model.Message{
			SenderID:   alice.ID,
			ReceiverID: bob.ID,
			Content:    content,
			CreatedAt:  now,
		}))
	}

	history, err := repo.History(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, history, len(contents))
	for i, content := range contents {
		assert.Equal(t, content, history[i].Content)
	}
}

func TestHistoryExcludesOtherPairs(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")
	carol := createUser(t, db, "Carol", "carol@example.com")

	require.NoError(t, repo.Create(&model.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "for bob"}))
	require.NoError(t, repo.Create(&model.Message{SenderID: alice.ID, ReceiverID: carol.ID, Content: "for carol"}))

	history, err := repo.History(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "for bob", history[0].Content)
}

func TestCounterparts(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)

	alice := createUser(t, db, "Alice", "alice@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")
	carol := createUser(t, db, "Carol", "carol@example.com")
	createUser(t, db, "Dave", "dave@example.com") // never messaged

	require.NoError(t, repo.Create(&model.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "a"}))
	require.NoError(t, repo.Create(&model.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "b"}))
	require.NoError(t, repo.Create(&model.Message{SenderID: carol.ID, ReceiverID: alice.ID, Content: "c"}))

	counterparts, err := repo.Counterparts(alice.ID)
	require.NoError(t, err)

	ids := make([]uint, 0, len(counterparts))
	for _, cp := range counterparts {
		ids = append(ids, cp.ID)
	}
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
}
