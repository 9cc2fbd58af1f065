package server

import (
	"os"
	"testing"

	"corsair-server/pkg/api"
	"corsair-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	os.Exit(m.Run())
}

func TestRelayFrames_TerminatesWhenHubCloses(t *testing.T) {
	updates := make(chan api.ServerResponse, 4)
	send := make(chan api.ServerResponse, 4)

	for i := 0; i < 3; i++ {
		updates <- api.ServerResponse{Type: "UPDATE", Tick: i}
	}
	close(updates)

	relayFrames(updates, send)

	for i := 0; i < 3; i++ {
		msg, ok := <-send
		if !ok || msg.Tick != i {
			t.Fatalf("Frame %d not relayed in order", i)
		}
	}
	if _, ok := <-send; ok {
		t.Error("Send channel should be closed after the hub channel drains")
	}
}

func TestRelayFrames_DropsWhenWriterStalls(t *testing.T) {
	updates := make(chan api.ServerResponse, 8)
	send := make(chan api.ServerResponse, 1)

	// The writer is gone: nothing drains send, yet the relay must not park
	for i := 0; i < 5; i++ {
		updates <- api.ServerResponse{Type: "UPDATE", Tick: i}
	}
	close(updates)

	relayFrames(updates, send)

	msg, ok := <-send
	if !ok {
		t.Fatal("The first frame should have been buffered")
	}
	if msg.Tick != 0 {
		t.Errorf("Expected the earliest frame to survive, got tick %d", msg.Tick)
	}
	if _, ok := <-send; ok {
		t.Error("Overflow frames should be dropped, not queued")
	}
}
