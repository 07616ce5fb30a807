package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID uint) *Client {
	return &Client{
		UserID: userID,
		Send:   make(chan []byte, 4),
	}
}

func TestSendToUserDeliversToRegisteredChannel(t *testing.T) {
	hub := NewHub()
	client := newTestClient(1)
	hub.Register(client)

	require.True(t, hub.SendToUser(1, []byte("hello")))
	assert.Equal(t, []byte("hello"), <-client.Send)
}

func TestSendToUserWithoutChannel(t *testing.T) {
	hub := NewHub()
	assert.False(t, hub.SendToUser(42, []byte("nobody home")))
}

func TestSecondChannelEvictsFirst(t *testing.T) {
	hub := NewHub()
	first := newTestClient(7)
	second := newTestClient(7)

	hub.Register(first)
	hub.Register(second)

	require.True(t, hub.SendToUser(7, []byte("ping")))
	assert.Equal(t, []byte("ping"), <-second.Send)
	assert.Empty(t, first.Send, "evicted channel must not receive forwards")
}

func TestStaleCloseDoesNotEvictNewerChannel(t *testing.T) {
	hub := NewHub()
	first := newTestClient(7)
	second := newTestClient(7)

	hub.Register(first)
	hub.Register(second)

	// Closing the evicted channel afterwards must not remove the
	// newer login's entry.
	hub.Unregister(first)

	assert.True(t, hub.IsOnline(7))
	require.True(t, hub.SendToUser(7, []byte("still here")))
	assert.Equal(t, []byte("still here"), <-second.Send)
}

func TestUnregisterRemovesOwnEntry(t *testing.T) {
	hub := NewHub()
	client := newTestClient(3)

	hub.Register(client)
	require.True(t, hub.IsOnline(3))

	hub.Unregister(client)
	assert.False(t, hub.IsOnline(3))
	assert.False(t, hub.SendToUser(3, []byte("gone")))
}

func TestSendToUserFullBufferDropsFrame(t *testing.T) {
	hub := NewHub()
	client := &Client{UserID: 9, Send: make(chan []byte)} // no buffer, no reader
	hub.Register(client)

	assert.False(t, hub.SendToUser(9, []byte("dropped")), "a stalled channel write is dropped, not retried")
}

func TestOnlineCount(t *testing.T) {
	hub := NewHub()
	assert.Zero(t, hub.OnlineCount())

	hub.Register(newTestClient(1))
	hub.Register(newTestClient(2))
	assert.Equal(t, 2, hub.OnlineCount())

	// Re-registering the same user replaces, not adds.
	hub.Register(newTestClient(1))
	assert.Equal(t, 2, hub.OnlineCount())
}
