package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type senderStub struct {
	mu    sync.Mutex
	sent  []string
	err   error
	calls chan struct{}
}

func newSenderStub(err error) *senderStub {
	return &senderStub{err: err, calls: make(chan struct{}, 16)}
}

func (s *senderStub) Send(recipient, body string) error {
	s.mu.Lock()
	s.sent = append(s.sent, recipient+": "+body)
	s.mu.Unlock()
	s.calls <- struct{}{}
	return s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewReminderDispatcherDefaults(t *testing.T) {
	d := NewReminderDispatcher(newSenderStub(nil), 0, 0, discardLogger())
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if cap(d.queue) != 1 {
		t.Fatalf("expected queue capacity default to 1, got %d", cap(d.queue))
	}
}

func TestReminderDispatcherDelivers(t *testing.T) {
	sender := newSenderStub(nil)
	d := NewReminderDispatcher(sender, 4, 2, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	if !d.Enqueue(Reminder{Recipient: "alice@example.com", Body: "due soon", OrderID: 1, PaymentID: 2}) {
		t.Fatal("expected enqueue to succeed")
	}

	select {
	case <-sender.calls:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for delivery")
	}

	d.Stop()
	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 1 || sender.sent[0] != "alice@example.com: due soon" {
		t.Fatalf("unexpected deliveries %#v", sender.sent)
	}
}

func TestReminderDispatcherDropsWhenFull(t *testing.T) {
	sender := newSenderStub(nil)
	d := NewReminderDispatcher(sender, 1, 1, discardLogger())

	// workers not started, so the queue fills up
	if !d.Enqueue(Reminder{OrderID: 1}) {
		t.Fatal("expected first enqueue to succeed")
	}
	if d.Enqueue(Reminder{OrderID: 2}) {
		t.Fatal("expected enqueue to full queue to fail")
	}
}

func TestReminderDispatcherSendFailureIsSwallowed(t *testing.T) {
	sender := newSenderStub(errors.New("smtp down"))
	d := NewReminderDispatcher(sender, 4, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(Reminder{Recipient: "bob@example.com", Body: "due"})

	select {
	case <-sender.calls:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for delivery attempt")
	}

	// Stop must not hang after a failed delivery.
	d.Stop()
}

func TestReminderDispatcherStopIsIdempotent(t *testing.T) {
	d := NewReminderDispatcher(newSenderStub(nil), 1, 1, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)
	d.Stop()
	d.Stop()
}
