package test

import (
	"context"
	"time"

	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	CurrentUserFn  func(context.Context, int64) (*model.User, error)
}

// Register returns the created user and token for registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email}, "token", nil
}

// Authenticate returns the user and token for login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CurrentUser returns the pre-configured authenticated user.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "stub", Email: "stub@example.com"}, nil
}

// UserFacadeStub simulates user management interactions.
type UserFacadeStub struct {
	UsersFn      func(context.Context) ([]model.User, error)
	CreateUserFn func(context.Context, string, string, string) (*model.User, error)
	UserFn       func(context.Context, int64) (*model.User, error)
	UpdateUserFn func(context.Context, int64, *string, *string, *string) (*model.User, error)
	DeleteUserFn func(context.Context, int64) error
}

// Users lists accounts via override or an empty slice.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{}, nil
}

// CreateUser returns a deterministic user for creation scenarios.
func (s UserFacadeStub) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email}, nil
}

// User fetches a user by identifier.
func (s UserFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Name: "stub", Email: "stub@example.com"}, nil
}

// UpdateUser applies the patch via override or echoes the identifier back.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, name, email, password *string) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, name, email, password)
	}
	return &model.User{ID: id}, nil
}

// DeleteUser removes the user via override or succeeds.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// ShopFacadeStub simulates shop listing interactions.
type ShopFacadeStub struct {
	ShopsFn      func(context.Context) ([]model.Shop, error)
	CreateShopFn func(context.Context, *model.Shop, []usecase.ImageUpload) (*model.Shop, error)
	ShopFn       func(context.Context, int64) (*model.Shop, error)
	UpdateShopFn func(context.Context, int64, model.ShopPatch) (*model.Shop, error)
	DeleteShopFn func(context.Context, int64) error
}

// Shops lists shops via override or an empty slice.
func (s ShopFacadeStub) Shops(ctx context.Context) ([]model.Shop, error) {
	if s.ShopsFn != nil {
		return s.ShopsFn(ctx)
	}
	return []model.Shop{}, nil
}

// CreateShop returns the stored shop for creation scenarios.
func (s ShopFacadeStub) CreateShop(ctx context.Context, shop *model.Shop, images []usecase.ImageUpload) (*model.Shop, error) {
	if s.CreateShopFn != nil {
		return s.CreateShopFn(ctx, shop, images)
	}
	created := *shop
	created.ID = 1
	if created.Images == nil {
		created.Images = []string{}
	}
	return &created, nil
}

// Shop fetches a shop by identifier.
func (s ShopFacadeStub) Shop(ctx context.Context, id int64) (*model.Shop, error) {
	if s.ShopFn != nil {
		return s.ShopFn(ctx, id)
	}
	return &model.Shop{ID: id, Title: "stub", Images: []string{}}, nil
}

// UpdateShop applies the patch via override or echoes the identifier back.
func (s ShopFacadeStub) UpdateShop(ctx context.Context, id int64, patch model.ShopPatch) (*model.Shop, error) {
	if s.UpdateShopFn != nil {
		return s.UpdateShopFn(ctx, id, patch)
	}
	return &model.Shop{ID: id, Images: []string{}}, nil
}

// DeleteShop removes the shop via override or succeeds.
func (s ShopFacadeStub) DeleteShop(ctx context.Context, id int64) error {
	if s.DeleteShopFn != nil {
		return s.DeleteShopFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub simulates order interactions.
type OrderFacadeStub struct {
	OrdersFn        func(context.Context) ([]model.Order, error)
	CreateOrderFn   func(context.Context, *model.Order) (*model.Order, error)
	OrderFn         func(context.Context, int64) (*model.Order, error)
	UpdateOrderFn   func(context.Context, int64, model.OrderPatch) (*model.Order, error)
	DeleteOrderFn   func(context.Context, int64) error
	OrderPaymentsFn func(context.Context, int64) ([]model.Payment, error)
}

// Orders lists orders via override or an empty slice.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{}, nil
}

// CreateOrder returns the stored order for creation scenarios.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, order)
	}
	created := *order
	created.ID = 1
	return &created, nil
}

// Order fetches an order by identifier.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, UserID: 1, PaymentMethod: model.PaymentMethodOutright}, nil
}

// UpdateOrder applies the patch via override or echoes the identifier back.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, patch)
	}
	return &model.Order{ID: id}, nil
}

// DeleteOrder removes the order via override or succeeds.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

// OrderPayments lists payments for an order.
func (s OrderFacadeStub) OrderPayments(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if s.OrderPaymentsFn != nil {
		return s.OrderPaymentsFn(ctx, orderID)
	}
	return []model.Payment{}, nil
}

// PaymentFacadeStub simulates payment interactions.
type PaymentFacadeStub struct {
	RecordPaymentFn    func(context.Context, int64, int64, float64, model.PaymentMethod, *time.Time) (*model.Payment, error)
	StaggeredFn        func(context.Context, int64, int64, float64) (*model.Payment, error)
	RentToOwnFn        func(context.Context, int64, int64, float64) (*model.Payment, error)
	OutrightFn         func(context.Context, int64, int64, float64, *time.Time) (*model.Payment, error)
	PaymentsByOrderFn  func(context.Context, int64) ([]model.Payment, error)
	RenewalsFn         func(context.Context) ([]model.Payment, error)
	PaymentHistoryFn   func(context.Context, int64) ([]model.PaymentHistoryEntry, error)
}

// RecordPayment records a payment via override or returns a deterministic one.
func (s PaymentFacadeStub) RecordPayment(ctx context.Context, orderID, userID int64, amount float64, method model.PaymentMethod, dueDate *time.Time) (*model.Payment, error) {
	if s.RecordPaymentFn != nil {
		return s.RecordPaymentFn(ctx, orderID, userID, amount, method, dueDate)
	}
	return &model.Payment{ID: 1, OrderID: orderID, UserID: userID, Amount: amount, PaymentMethod: method, DueDate: dueDate}, nil
}

// StaggeredPayment records a staggered installment.
func (s PaymentFacadeStub) StaggeredPayment(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error) {
	if s.StaggeredFn != nil {
		return s.StaggeredFn(ctx, orderID, userID, amount)
	}
	return &model.Payment{ID: 1, OrderID: orderID, UserID: userID, Amount: amount, PaymentMethod: model.PaymentMethodStaggered}, nil
}

// RentToOwnPayment records a rent-to-own installment.
func (s PaymentFacadeStub) RentToOwnPayment(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error) {
	if s.RentToOwnFn != nil {
		return s.RentToOwnFn(ctx, orderID, userID, amount)
	}
	return &model.Payment{ID: 1, OrderID: orderID, UserID: userID, Amount: amount, PaymentMethod: model.PaymentMethodRentToOwn}, nil
}

// OutrightPayment records an outright payment.
func (s PaymentFacadeStub) OutrightPayment(ctx context.Context, orderID, userID int64, amount float64, dueDate *time.Time) (*model.Payment, error) {
	if s.OutrightFn != nil {
		return s.OutrightFn(ctx, orderID, userID, amount, dueDate)
	}
	return &model.Payment{ID: 1, OrderID: orderID, UserID: userID, Amount: amount, PaymentMethod: model.PaymentMethodOutright, DueDate: dueDate}, nil
}

// PaymentsByOrder lists payments via override or an empty slice.
func (s PaymentFacadeStub) PaymentsByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if s.PaymentsByOrderFn != nil {
		return s.PaymentsByOrderFn(ctx, orderID)
	}
	return []model.Payment{}, nil
}

// Renewals lists overdue payments via override or an empty slice.
func (s PaymentFacadeStub) Renewals(ctx context.Context) ([]model.Payment, error) {
	if s.RenewalsFn != nil {
		return s.RenewalsFn(ctx)
	}
	return []model.Payment{}, nil
}

// PaymentHistory lists history entries via override or an empty slice.
func (s PaymentFacadeStub) PaymentHistory(ctx context.Context, orderID int64) ([]model.PaymentHistoryEntry, error) {
	if s.PaymentHistoryFn != nil {
		return s.PaymentHistoryFn(ctx, orderID)
	}
	return []model.PaymentHistoryEntry{}, nil
}

// MarketFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
	ShopFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
}
