package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/domain/repository"
	"github.com/ekeukwu/market/internal/worker"
)

// ReminderScheduler enqueues a due-date reminder without blocking. The
// outcome of the delivery is never observed by the caller.
type ReminderScheduler interface {
	Enqueue(reminder worker.Reminder) bool
}

// PaymentUseCase records payments, mirrors them into the history log and
// schedules due-date reminders.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	users     repository.UserRepository
	reminders ReminderScheduler
	interval  time.Duration
}

// NewPaymentUseCase constructs PaymentUseCase. interval is the due-date
// offset applied to staggered and rent-to-own payments.
func NewPaymentUseCase(payments repository.PaymentRepository, users repository.UserRepository, reminders ReminderScheduler, interval time.Duration) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, users: users, reminders: reminders, interval: interval}
}

// Record persists a payment, appends an identical history entry and, when a
// due date is set, schedules an email reminder. A due date with an
// unresolvable user fails the whole call before anything is written.
func (u *PaymentUseCase) Record(ctx context.Context, orderID, userID int64, amount float64, method model.PaymentMethod, dueDate *time.Time) (*model.Payment, error) {
	if !method.Valid() {
		return nil, domainErrors.ErrInvalidPaymentMethod
	}
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	var email string
	if dueDate != nil {
		usr, err := u.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		email = usr.Email
	}

	payment, err := u.payments.Create(ctx, &model.Payment{
		OrderID:       orderID,
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: method,
		DueDate:       dueDate,
	})
	if err != nil {
		return nil, err
	}

	// Independent write, no transaction: history may lag the live record
	// if this insert fails.
	if _, err := u.payments.AppendHistory(ctx, payment); err != nil {
		return nil, err
	}

	if dueDate != nil {
		u.reminders.Enqueue(worker.Reminder{
			Recipient: email,
			Body:      reminderBody(orderID, amount, *dueDate),
			OrderID:   orderID,
			PaymentID: payment.ID,
		})
	}

	return payment, nil
}

// Staggered records an installment payment, forcing the due date to
// now + interval regardless of what the caller supplied.
func (u *PaymentUseCase) Staggered(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error) {
	due := time.Now().Add(u.interval)
	return u.Record(ctx, orderID, userID, amount, model.PaymentMethodStaggered, &due)
}

// RentToOwn records a rent-to-own payment with the same forced due date as
// Staggered.
func (u *PaymentUseCase) RentToOwn(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error) {
	due := time.Now().Add(u.interval)
	return u.Record(ctx, orderID, userID, amount, model.PaymentMethodRentToOwn, &due)
}

// Outright records a one-off payment with whatever due date the caller
// supplied, typically none.
func (u *PaymentUseCase) Outright(ctx context.Context, orderID, userID int64, amount float64, dueDate *time.Time) (*model.Payment, error) {
	return u.Record(ctx, orderID, userID, amount, model.PaymentMethodOutright, dueDate)
}

// ListByOrder returns the live payments recorded against an order.
func (u *PaymentUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	return u.payments.ListByOrder(ctx, orderID)
}

// Renewals returns every payment whose due date has passed. Read-only:
// repeated calls with no intervening writes return the same set.
func (u *PaymentUseCase) Renewals(ctx context.Context) ([]model.Payment, error) {
	return u.payments.ListDueBefore(ctx, time.Now())
}

// History returns the append-only history entries for an order.
func (u *PaymentUseCase) History(ctx context.Context, orderID int64) ([]model.PaymentHistoryEntry, error) {
	return u.payments.HistoryByOrder(ctx, orderID)
}

func reminderBody(orderID int64, amount float64, due time.Time) string {
	return fmt.Sprintf("Your payment of %.2f for order %d is due on %s.", amount, orderID, due.Format(time.RFC1123))
}
