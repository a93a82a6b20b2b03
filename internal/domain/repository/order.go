package repository

import (
	"context"

	"github.com/ekeukwu/market/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}
