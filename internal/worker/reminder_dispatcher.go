package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ekeukwu/market/internal/adapter/mailer"
)

// Reminder is a queued due-date notification. It carries everything the
// delivery needs so workers never touch the database.
type Reminder struct {
	Recipient string
	Body      string
	OrderID   int64
	PaymentID int64
}

// ReminderDispatcher consumes a bounded queue of reminders and delivers
// them by email. Delivery runs after the HTTP response has been sent;
// failures are logged and never surfaced to any client.
type ReminderDispatcher struct {
	sender  mailer.Sender
	workers int
	logger  *slog.Logger

	queue  chan Reminder
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReminderDispatcher constructs the dispatcher with a queue of the given
// capacity.
func NewReminderDispatcher(sender mailer.Sender, queueSize, workers int, logger *slog.Logger) *ReminderDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &ReminderDispatcher{
		sender:  sender,
		workers: workers,
		logger:  logger,
		queue:   make(chan Reminder, queueSize),
	}
}

// Start launches the delivery workers.
func (d *ReminderDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop terminates the workers and waits for in-flight deliveries. Queued
// reminders that were not picked up yet are discarded.
func (d *ReminderDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue hands a reminder to the queue without blocking. When the queue is
// full the reminder is dropped and the drop is logged.
func (d *ReminderDispatcher) Enqueue(reminder Reminder) bool {
	select {
	case d.queue <- reminder:
		return true
	default:
		d.logger.Warn("reminder queue full, dropping reminder",
			slog.Int64("order_id", reminder.OrderID),
			slog.Int64("payment_id", reminder.PaymentID),
		)
		return false
	}
}

func (d *ReminderDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case reminder := <-d.queue:
			d.deliver(reminder)
		}
	}
}

func (d *ReminderDispatcher) deliver(reminder Reminder) {
	if err := d.sender.Send(reminder.Recipient, reminder.Body); err != nil {
		d.logger.Error("reminder delivery failed",
			slog.Int64("order_id", reminder.OrderID),
			slog.Int64("payment_id", reminder.PaymentID),
			slog.String("error", err.Error()),
		)
		return
	}
	d.logger.Info("reminder sent",
		slog.Int64("order_id", reminder.OrderID),
		slog.Int64("payment_id", reminder.PaymentID),
	)
}
