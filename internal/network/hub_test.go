package network

import (
	"testing"

	"corsair-server/pkg/api"
)

func TestBroadcaster_RegisterAndSendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("p1")

	if !b.HasSubscriber("p1") {
		t.Fatal("Subscriber should be registered")
	}

	b.SendTo("p1", api.ServerResponse{Type: "UPDATE", Tick: 7})

	select {
	case msg := <-ch:
		if msg.Tick != 7 {
			t.Errorf("Wrong frame delivered, tick = %d", msg.Tick)
		}
	default:
		t.Fatal("Frame was not delivered")
	}

	// Unicast to a stranger is a silent no-op
	b.SendTo("ghost", api.ServerResponse{Type: "UPDATE"})
}

func TestBroadcaster_Broadcast(t *testing.T) {
	b := NewBroadcaster()
	first := b.Register("p1")
	second := b.Register("p2")

	b.Broadcast(api.ServerResponse{Type: "UPDATE", Tick: 3})

	for name, ch := range map[string]chan api.ServerResponse{"p1": first, "p2": second} {
		select {
		case msg := <-ch:
			if msg.Tick != 3 {
				t.Errorf("%s got the wrong frame, tick = %d", name, msg.Tick)
			}
		default:
			t.Errorf("%s did not receive the broadcast", name)
		}
	}
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("p1")
	b.Unregister("p1")

	if b.HasSubscriber("p1") {
		t.Error("Subscriber should be gone")
	}
	if _, open := <-ch; open {
		t.Error("Channel should be closed on unregister")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("Expected zero subscribers, got %d", b.SubscriberCount())
	}

	// Unregistering twice must not panic
	b.Unregister("p1")
}

func TestBroadcaster_ReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("p1")
	fresh := b.Register("p1")

	if _, open := <-old; open {
		t.Error("Old channel should be closed on re-register")
	}

	b.SendTo("p1", api.ServerResponse{Type: "UPDATE"})
	select {
	case <-fresh:
	default:
		t.Error("Fresh channel should receive frames")
	}
}

func TestBroadcaster_SlowSubscriberDropsFrames(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("p1")

	// Overflow the buffer: extra frames are dropped, nothing blocks
	for i := 0; i < cap(ch)+10; i++ {
		b.SendTo("p1", api.ServerResponse{Type: "UPDATE", Tick: i})
	}

	if len(ch) != cap(ch) {
		t.Errorf("Buffer should be full, holds %d of %d", len(ch), cap(ch))
	}
}
