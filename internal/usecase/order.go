package usecase

import (
	"context"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, payments repository.PaymentRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, payments: payments}
}

// List returns every order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Create registers a new order.
func (u *OrderUseCase) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if !order.PaymentMethod.Valid() {
		return nil, domainErrors.ErrInvalidPaymentMethod
	}
	if order.Status == "" {
		order.Status = "pending"
	}
	return u.orders.Create(ctx, order)
}

// GetByID fetches an order by identifier.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// Update applies the present fields only.
func (u *OrderUseCase) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	if patch.PaymentMethod != nil && !patch.PaymentMethod.Valid() {
		return nil, domainErrors.ErrInvalidPaymentMethod
	}
	return u.orders.Update(ctx, id, patch)
}

// Delete removes an order; missing ids surface as ErrNotFound.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

// PaymentsForOrder lists payments for an existing order. The order must
// resolve before the payment lookup runs.
func (u *OrderUseCase) PaymentsForOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return u.payments.ListByOrder(ctx, orderID)
}
