package sse

import (
	"testing"

	"github.com/google/uuid"

	"github.com/launchbase/launchbase-backend/internal/logger"
)

func testHub(t *testing.T) *SSEHub {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return NewSSEHub(log)
}

func TestBroadcastReachesSubscribedClient(t *testing.T) {
	hub := testHub(t)
	userID := uuid.New()
	client := hub.NewSSEClient(userID)
	hub.AddChannel(client, UserChannel(userID))

	hub.Broadcast(SSEMessage{
		Channel: UserChannel(userID),
		Event:   SSEEventNotificationCreated,
		Data:    "hello",
	})

	select {
	case msg := <-client.Outbound:
		if msg.Event != SSEEventNotificationCreated {
			t.Errorf("event=%q", msg.Event)
		}
	default:
		t.Fatal("no message delivered")
	}
}

func TestBroadcastSkipsOtherChannels(t *testing.T) {
	hub := testHub(t)
	client := hub.NewSSEClient(uuid.New())
	hub.AddChannel(client, UserChannel(client.UserID))

	hub.Broadcast(SSEMessage{
		Channel: UserChannel(uuid.New()),
		Event:   SSEEventAgentActivity,
	})

	select {
	case msg := <-client.Outbound:
		t.Fatalf("unexpected message %+v", msg)
	default:
	}
}

func TestBroadcastDropsWhenBufferFull(t *testing.T) {
	hub := testHub(t)
	client := hub.NewSSEClient(uuid.New())
	channel := UserChannel(client.UserID)
	hub.AddChannel(client, channel)

	// fill the outbound buffer and one more; the extra is dropped, not blocked
	for i := 0; i < cap(client.Outbound)+1; i++ {
		hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventAgentActivity})
	}
	if got := len(client.Outbound); got != cap(client.Outbound) {
		t.Errorf("buffered=%d, want %d", got, cap(client.Outbound))
	}
}

func TestRemoveClientUnsubscribesEverything(t *testing.T) {
	hub := testHub(t)
	client := hub.NewSSEClient(uuid.New())
	channel := UserChannel(client.UserID)
	hub.AddChannel(client, channel)
	hub.RemoveClient(client)

	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventProjectConnected})
	select {
	case msg := <-client.Outbound:
		t.Fatalf("unexpected message after removal %+v", msg)
	default:
	}
}
