package app

import (
	"context"
	"time"

	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/usecase"
)

// MarketFacade aggregates the application use cases behind a single surface
// consumed by the HTTP layer.
type MarketFacade struct {
	auth     *usecase.AuthUseCase
	users    *usecase.UserUseCase
	shops    *usecase.ShopUseCase
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
}

func NewMarketFacade(auth *usecase.AuthUseCase, users *usecase.UserUseCase, shops *usecase.ShopUseCase, orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase) *MarketFacade {
	return &MarketFacade{auth: auth, users: users, shops: shops, orders: orders, payments: payments}
}

func (f *MarketFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *MarketFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MarketFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *MarketFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *MarketFacade) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	return f.users.Create(ctx, name, email, password)
}

func (f *MarketFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.GetByID(ctx, id)
}

func (f *MarketFacade) UpdateUser(ctx context.Context, id int64, name, email, password *string) (*model.User, error) {
	return f.users.Update(ctx, id, name, email, password)
}

func (f *MarketFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

func (f *MarketFacade) Shops(ctx context.Context) ([]model.Shop, error) {
	return f.shops.List(ctx)
}

func (f *MarketFacade) CreateShop(ctx context.Context, shop *model.Shop, images []usecase.ImageUpload) (*model.Shop, error) {
	return f.shops.Create(ctx, shop, images)
}

func (f *MarketFacade) Shop(ctx context.Context, id int64) (*model.Shop, error) {
	return f.shops.GetByID(ctx, id)
}

func (f *MarketFacade) UpdateShop(ctx context.Context, id int64, patch model.ShopPatch) (*model.Shop, error) {
	return f.shops.Update(ctx, id, patch)
}

func (f *MarketFacade) DeleteShop(ctx context.Context, id int64) error {
	return f.shops.Delete(ctx, id)
}

func (f *MarketFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *MarketFacade) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *MarketFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *MarketFacade) UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch)
}

func (f *MarketFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *MarketFacade) OrderPayments(ctx context.Context, orderID int64) ([]model.Payment, error) {
	return f.orders.PaymentsForOrder(ctx, orderID)
}

func (f *MarketFacade) RecordPayment(ctx context.Context, orderID, userID int64, amount float64, method model.PaymentMethod, dueDate *time.Time) (*model.Payment, error) {
	return f.payments.Record(ctx, orderID, userID, amount, method, dueDate)
}

func (f *MarketFacade) StaggeredPayment(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error) {
	return f.payments.Staggered(ctx, orderID, userID, amount)
}

func (f *MarketFacade) RentToOwnPayment(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error) {
	return f.payments.RentToOwn(ctx, orderID, userID, amount)
}

func (f *MarketFacade) OutrightPayment(ctx context.Context, orderID, userID int64, amount float64, dueDate *time.Time) (*model.Payment, error) {
	return f.payments.Outright(ctx, orderID, userID, amount, dueDate)
}

func (f *MarketFacade) PaymentsByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	return f.payments.ListByOrder(ctx, orderID)
}

func (f *MarketFacade) Renewals(ctx context.Context) ([]model.Payment, error) {
	return f.payments.Renewals(ctx)
}

func (f *MarketFacade) PaymentHistory(ctx context.Context, orderID int64) ([]model.PaymentHistoryEntry, error) {
	return f.payments.History(ctx, orderID)
}
