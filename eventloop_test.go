package wmediumd

import (
	"context"
	"testing"
	"time"
)

func TestRunProcessesIncomingFrameThenStopsOnCancel(t *testing.T) {
	transport := newFakeTransport()
	e, _ := newTestEngine(t, transport, fixedProb(0))

	sender := MacAddr{0x02, 0, 0, 0, 0, 1}
	receiver := MacAddr{0x02, 0, 0, 0, 0, 2}
	e.AddStation(sender)
	e.AddStation(receiver)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	transport.incoming <- IncomingFrameMsg{
		TransmitterAddr: sender,
		Payload:         testPayload(receiver, false),
		TxRates:         fullLadder(),
	}

	deadline := time.Now().Add(2 * time.Second)
	for e.Registry.Lookup(sender).DataQ.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for the event loop to enqueue the frame")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event loop did not stop after cancel")
	}
}

func TestRunStopsWhenTransportClosesIncoming(t *testing.T) {
	transport := newFakeTransport()
	e, _ := newTestEngine(t, transport, fixedProb(0))

	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	close(transport.incoming)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error on transport shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event loop did not stop after transport channel closed")
	}
}
