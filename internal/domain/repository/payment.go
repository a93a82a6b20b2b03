package repository

import (
	"context"
	"time"

	"github.com/ekeukwu/market/internal/domain/model"
)

// PaymentRepository describes persistence operations for payments and their
// append-only history mirror.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	AppendHistory(ctx context.Context, payment *model.Payment) (*model.PaymentHistoryEntry, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
	ListDueBefore(ctx context.Context, deadline time.Time) ([]model.Payment, error)
	HistoryByOrder(ctx context.Context, orderID int64) ([]model.PaymentHistoryEntry, error)
}
