package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(id string, userID uint) *Client {
	return &Client{
		ID:            id,
		UserID:        userID,
		Send:          make(chan *Event, 8),
		subscriptions: make(map[string]bool),
	}
}

func recvEvent(t *testing.T, ch chan *Event) *Event {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestHubRegisterSendsWelcome(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := newTestClient("c1", 1)
	client.Hub = hub
	hub.register <- client

	welcome := recvEvent(t, client.Send)
	assert.Equal(t, "welcome", welcome.Type)
}

func TestBroadcastReachesOnlySubscribers(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	subscriber := newTestClient("c1", 1)
	subscriber.Hub = hub
	other := newTestClient("c2", 2)
	other.Hub = hub

	hub.register <- subscriber
	hub.register <- other
	recvEvent(t, subscriber.Send)
	recvEvent(t, other.Send)

	subscriber.Subscribe(ProjectChannel(5))
	hub.Broadcast(ProjectChannel(5), "task_created", map[string]int{"id": 1})

	event := recvEvent(t, subscriber.Send)
	assert.Equal(t, "task_created", event.Type)
	assert.Equal(t, ProjectChannel(5), event.Channel)

	select {
	case unexpected := <-other.Send:
		t.Fatalf("unsubscribed client received %q", unexpected.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSendToUserTargetsAllUserConnections(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	first := newTestClient("c1", 7)
	first.Hub = hub
	second := newTestClient("c2", 7)
	second.Hub = hub
	other := newTestClient("c3", 8)
	other.Hub = hub

	for _, client := range []*Client{first, second, other} {
		hub.register <- client
		recvEvent(t, client.Send)
	}

	hub.SendToUser(7, "notification", nil)

	assert.Equal(t, "notification", recvEvent(t, first.Send).Type)
	assert.Equal(t, "notification", recvEvent(t, second.Send).Type)
	select {
	case unexpected := <-other.Send:
		t.Fatalf("wrong user received %q", unexpected.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := newTestClient("c1", 1)
	client.Hub = hub
	hub.register <- client
	recvEvent(t, client.Send)
	require.Equal(t, 1, waitForCount(hub, 1))

	hub.unregister <- client

	select {
	case _, open := <-client.Send:
		assert.False(t, open, "send channel must be closed after unregister")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
	assert.Equal(t, 0, waitForCount(hub, 0))
}

func waitForCount(hub *Hub, want int) int {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return want
		}
		time.Sleep(5 * time.Millisecond)
	}
	return hub.ClientCount()
}

func TestProjectChannelNaming(t *testing.T) {
	assert.Equal(t, "project:42", ProjectChannel(42))
}
