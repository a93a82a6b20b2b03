package test

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ekeukwu/market/internal/worker"
)

// UploaderStub records uploads and returns deterministic URLs.
type UploaderStub struct {
	UploadFn func(context.Context, string, string, io.Reader) (string, error)

	mu       sync.Mutex
	Uploaded []string
}

// Upload stores the filename and returns an override result or a stub URL.
func (s *UploaderStub) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	s.mu.Lock()
	s.Uploaded = append(s.Uploaded, filename)
	s.mu.Unlock()
	if s.UploadFn != nil {
		return s.UploadFn(ctx, filename, contentType, body)
	}
	return fmt.Sprintf("https://cdn.example.com/%s", filename), nil
}

// SenderStub records delivered reminder emails.
type SenderStub struct {
	SendFn func(string, string) error

	mu   sync.Mutex
	Sent []string
}

// Send stores the recipient and delegates to the override when set.
func (s *SenderStub) Send(recipient, body string) error {
	s.mu.Lock()
	s.Sent = append(s.Sent, recipient)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(recipient, body)
	}
	return nil
}

// SchedulerStub captures reminders enqueued by payment recording.
type SchedulerStub struct {
	Accept    bool
	Reminders []worker.Reminder
}

// NewSchedulerStub constructs a scheduler that accepts every reminder.
func NewSchedulerStub() *SchedulerStub {
	return &SchedulerStub{Accept: true}
}

// Enqueue records the reminder and reports the configured acceptance.
func (s *SchedulerStub) Enqueue(r worker.Reminder) bool {
	s.Reminders = append(s.Reminders, r)
	return s.Accept
}
